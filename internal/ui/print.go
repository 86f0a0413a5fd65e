// Package ui renders todo output: styled messages, panels and the
// interactive browser.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results to stdout and failures to stderr, each
// styled for its own stream.
type Printer struct {
	Out, Err io.Writer
	out, err Theme
}

// NewPrinter builds a Printer; nil writers default to the process streams.
func NewPrinter(out, errw io.Writer, theme string) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &Printer{
		Out: out,
		Err: errw,
		out: NewTheme(theme, lipgloss.NewRenderer(out)),
		err: NewTheme(theme, lipgloss.NewRenderer(errw)),
	}
}

// Theme is the stdout theme.
func (p *Printer) Theme() Theme { return p.out }

// OK prints a success line on stdout.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.out.Success.Render(p.out.SymOK+" "+msg))
}

// Fail prints a failure line on stderr.
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.err.Error.Render(p.err.SymFail+" "+msg))
}

// Hint prints a muted follow-up line on stderr.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.Err, p.err.Muted.Render(msg))
}

// Println writes an unstyled line on stdout.
func (p *Printer) Println(s string) { fmt.Fprintln(p.Out, s) }

// Errorln writes an unstyled line on stderr.
func (p *Printer) Errorln(s string) { fmt.Fprintln(p.Err, s) }
