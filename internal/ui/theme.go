package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + frame.
// All UI helpers pull their styles from a Theme.
type Theme struct {
	Name string

	Title, Muted, Accent    lipgloss.Style
	Success, Error, Pending lipgloss.Style
	Selected, DoneText      lipgloss.Style
	Frame                   lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
	SymDone, SymPending      string
}

// ThemeNames lists the accepted theme names.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// NewTheme builds the named theme for renderer r (stdout when nil).
// Unknown names fall back to classic.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.NewRenderer(os.Stdout)
	}
	t := Theme{
		Name:         "classic",
		Title:        r.NewStyle().Bold(true),
		Muted:        r.NewStyle().Faint(true),
		Accent:       r.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      r.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      r.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     r.NewStyle().Bold(true).Reverse(true),
		DoneText:     r.NewStyle().Faint(true).Strikethrough(true),
		Frame:        r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymOK:        "✔",
		SymFail:      "✖",
		SymDone:      "✔",
		SymPending:   "•",
	}

	switch strings.ToLower(name) {
	case "neon":
		t.Name = "neon"
		t.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // bright magenta
		t.Muted = r.NewStyle().Foreground(lipgloss.Color("8"))
		t.Accent = r.NewStyle().Foreground(lipgloss.Color("14"))
		t.Success = r.NewStyle().Foreground(lipgloss.Color("10"))
		t.Pending = r.NewStyle().Foreground(lipgloss.Color("11"))
		t.Selected = r.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Frame = t.Frame.BorderForeground(lipgloss.Color("13"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	case "mono":
		r.SetColorProfile(termenv.Ascii)
		plain := r.NewStyle()
		t.Name = "mono"
		t.Title, t.Muted, t.Accent = plain, plain, plain
		t.Success, t.Error, t.Pending = plain, plain, plain
		t.Selected, t.DoneText = plain, plain
		t.Frame = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		t.BoxUnchecked, t.BoxChecked = "[ ]", "[x]"
		t.SymOK, t.SymFail = "ok:", "error:"
		t.SymDone, t.SymPending = "x", "-"
	}
	return t
}
