package cli

import (
	"fmt"

	"github.com/idilsaglam/todocat/internal/model"
	"github.com/idilsaglam/todocat/internal/ui"
)

const untagged = "(none)"

func (a *app) doStats() int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	th := a.p.Theme()

	d, p := model.Stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), d,
		th.Pending.Render(th.SymPending), p,
		th.Accent.Render("Total"), len(todos),
	)

	lines := []string{header, th.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if len(todos) == 0 {
		lines = append(lines, th.Muted.Render("no todos"))
	} else {
		lines = append(lines, th.Accent.Render("By category"))
		for _, c := range categoryCounts(todos) {
			lines = append(lines, fmt.Sprintf("  %-12s %d/%d", c.name, c.done, c.total))
		}
	}
	lines = append(lines, "", th.Muted.Render("Tip: add with `todo add --cat work \"write report\"`"))
	a.p.Panel(lines)
	return 0
}

type categoryCount struct {
	name        string
	done, total int
}

// categoryCounts groups todos by category in first-seen order, with
// untagged todos last.
func categoryCounts(todos []model.Todo) []categoryCount {
	var out []categoryCount
	index := map[string]int{}
	var none *categoryCount
	for _, t := range todos {
		var c *categoryCount
		if t.Category.IsZero() {
			if none == nil {
				none = &categoryCount{name: untagged}
			}
			c = none
		} else {
			name := t.Category.String()
			i, ok := index[name]
			if !ok {
				i = len(out)
				index[name] = i
				out = append(out, categoryCount{name: name})
			}
			c = &out[i]
		}
		c.total++
		if t.Done {
			c.done++
		}
	}
	if none != nil {
		out = append(out, *none)
	}
	return out
}
