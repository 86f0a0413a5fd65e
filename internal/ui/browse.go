package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todocat/internal/model"
)

// todoItem adapts model.Todo to bubbles/list.Item.
type todoItem struct {
	todo model.Todo
}

func (i todoItem) Title() string       { return fmt.Sprintf("#%d%s %s", i.todo.ID, i.todo.Label(), i.todo.Text) }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.Text + " " + i.todo.Category.String() }

// itemDelegate renders one todo per line.
type itemDelegate struct {
	theme Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.Title()
	if it.todo.Done {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type browseKeys struct {
	toggle, remove, add, undo key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
}

// browser is the Bubble Tea model behind `todo browse`.
type browser struct {
	list  list.Model
	keys  browseKeys
	theme Theme

	changed bool
	nextID  int

	// inline add
	adding bool
	input  textinput.Model
	addErr string

	// single-level undo of the last delete
	undoIndex int
	undoItem  *todoItem

	width, height int
}

func newBrowser(todos []model.Todo, theme Theme) browser {
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}

	l := list.New(items, itemDelegate{theme: theme}, 0, 0)
	l.Title = theme.Title.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	keys := newBrowseKeys()
	extra := func() []key.Binding { return []key.Binding{keys.toggle, keys.remove, keys.add, keys.undo} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "New todo..."
	in.CharLimit = 200

	return browser{
		list:   l,
		keys:   keys,
		theme:  theme,
		nextID: model.NextID(todos),
		input:  in,
		width:  80,
		height: 24,
	}
}

// Browse runs the interactive list and returns the resulting todos and
// whether anything changed.
func Browse(todos []model.Todo, theme Theme) ([]model.Todo, bool, error) {
	p := tea.NewProgram(newBrowser(todos, theme), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return todos, false, err
	}
	b, ok := final.(browser)
	if !ok {
		return todos, false, nil
	}
	return b.todos(), b.changed, nil
}

func (b browser) todos() []model.Todo {
	out := make([]model.Todo, 0, len(b.list.Items()))
	for _, it := range b.list.Items() {
		if ti, ok := it.(todoItem); ok {
			out = append(out, ti.todo)
		}
	}
	return out
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		b.width, b.height = size.Width, size.Height
		b.resize()
		return b, nil
	}

	if b.adding {
		return b.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || b.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return b, cmd
	}

	switch {
	case km.String() == "q" || (km.String() == "esc" && b.list.FilterState() != list.FilterApplied):
		return b, tea.Quit
	case key.Matches(km, b.keys.toggle):
		if ti, ok := b.list.SelectedItem().(todoItem); ok {
			ti.todo.Done = !ti.todo.Done
			b.changed = true
			return b, b.list.SetItem(b.list.GlobalIndex(), ti)
		}
		return b, nil
	case key.Matches(km, b.keys.remove):
		if ti, ok := b.list.SelectedItem().(todoItem); ok {
			tmp := ti
			b.undoItem = &tmp
			b.undoIndex = b.list.GlobalIndex()
			b.list.RemoveItem(b.undoIndex)
			b.changed = true
		}
		return b, nil
	case key.Matches(km, b.keys.undo):
		if b.undoItem != nil {
			idx := min(max(b.undoIndex, 0), len(b.list.Items()))
			cmd := b.list.InsertItem(idx, *b.undoItem)
			b.list.Select(idx)
			b.undoItem = nil
			return b, cmd
		}
		return b, nil
	case key.Matches(km, b.keys.add):
		b.adding = true
		b.addErr = ""
		b.input.SetValue("")
		b.input.Focus()
		b.resize()
		return b, textinput.Blink
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b browser) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := strings.TrimSpace(b.input.Value())
			if text == "" {
				b.addErr = "Text cannot be empty"
				return b, nil
			}
			t := model.Todo{ID: b.nextID, Text: text}
			b.nextID++
			cmd := b.list.InsertItem(len(b.list.Items()), todoItem{todo: t})
			b.list.Select(len(b.list.Items()) - 1)
			b.changed = true
			b.stopAdding()
			return b, cmd
		case "esc":
			b.stopAdding()
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *browser) stopAdding() {
	b.adding = false
	b.input.SetValue("")
	b.input.Blur()
	b.resize()
}

func (b *browser) resize() {
	h := b.height - 4
	if b.adding {
		h -= 3
	}
	b.list.SetSize(b.width-4, max(h, 1))
}

func (b browser) View() string {
	done, pending := model.Stats(b.todos())
	header := fmt.Sprintf("%s %d  %s %d",
		b.theme.Success.Render(b.theme.SymDone), done,
		b.theme.Pending.Render(b.theme.SymPending), pending)

	content := header + "\n" + b.list.View()
	if b.adding {
		title := "Add todo"
		if b.addErr != "" {
			title += " - " + b.theme.Error.Render(b.addErr)
		}
		content += "\n" + b.theme.Frame.Render(title+"\n"+b.input.View())
	}
	return b.theme.Frame.Render(content)
}
