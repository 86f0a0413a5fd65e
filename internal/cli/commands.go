package cli

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/todocat/internal/model"
)

// Every command does one load of each collection it touches and at most
// one save. Failures return before anything is written.

func (a *app) loadFailed(err error) int {
	a.p.Fail("load: " + err.Error())
	return 1
}

func (a *app) saveFailed(err error) int {
	a.p.Fail("save: " + err.Error())
	return 1
}

// -------------- todos ----------------

func (a *app) doAddWithCategory(name, text string) int {
	custom, err := a.categories.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	cat, err := model.ParseCategory(name, custom)
	if err != nil {
		a.p.Fail("Unknown category: " + name)
		a.p.Hint("Use 'todo category list' to see available categories.")
		return 1
	}
	return a.doAdd(text, cat)
}

func (a *app) doAdd(text string, cat model.Category) int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	t := model.Todo{ID: model.NextID(todos), Text: text, Category: cat}
	todos = append(todos, t)
	if err := a.todos.Save(todos); err != nil {
		return a.saveFailed(err)
	}
	a.p.OK(fmt.Sprintf("Added todo #%d%s: %s", t.ID, t.Label(), t.Text))
	return 0
}

func (a *app) doList() int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	if len(todos) == 0 {
		a.p.Println("No todos.")
		return 0
	}
	for _, t := range todos {
		a.p.Println(t.Line())
	}
	return 0
}

func (a *app) doDone(id int) int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	i := model.Find(todos, id)
	if i < 0 {
		return a.notFound(id)
	}
	todos[i].Done = true
	if err := a.todos.Save(todos); err != nil {
		return a.saveFailed(err)
	}
	a.p.OK(fmt.Sprintf("Marked #%d as done.", id))
	return 0
}

func (a *app) doRemove(id int) int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	todos, ok := model.RemoveID(todos, id)
	if !ok {
		return a.notFound(id)
	}
	if err := a.todos.Save(todos); err != nil {
		return a.saveFailed(err)
	}
	a.p.OK(fmt.Sprintf("Removed #%d.", id))
	return 0
}

func (a *app) notFound(id int) int {
	a.log.Debug("no such todo", "id", id, "err", model.ErrNotFound)
	a.p.Fail(fmt.Sprintf("Todo #%d not found.", id))
	a.p.Hint("Hint: run `todo list` to see valid ids")
	return 1
}

// -------------- categories ----------------

func (a *app) doCategoryAdd(name string) int {
	if model.IsBuiltinName(name) {
		a.p.Fail(fmt.Sprintf("'%s' is a built-in category.", name))
		return 1
	}
	custom, err := a.categories.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	if err := model.ValidateNewCategory(name, custom); err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateCategory):
			a.p.Fail(fmt.Sprintf("Category '%s' already exists.", name))
		default:
			a.p.Fail(err.Error())
		}
		return 1
	}
	custom = append(custom, name)
	if err := a.categories.Save(custom); err != nil {
		return a.saveFailed(err)
	}
	a.p.OK("Added category: " + name)
	return 0
}

func (a *app) doCategoryList() int {
	a.p.Println("Built-in:")
	for _, c := range model.BuiltinNames() {
		a.p.Println("  " + c)
	}
	custom, err := a.categories.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	if len(custom) > 0 {
		a.p.Println("Custom:")
		for _, c := range custom {
			a.p.Println("  " + c)
		}
	}
	return 0
}
