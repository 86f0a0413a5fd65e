package cli

func (a *app) doBrowse() int {
	todos, err := a.todos.Load()
	if err != nil {
		return a.loadFailed(err)
	}
	out, changed, err := a.browse(todos, a.p.Theme())
	if err != nil {
		a.p.Fail("browse: " + err.Error())
		return 1
	}
	if !changed {
		return 0
	}
	if err := a.todos.Save(out); err != nil {
		return a.saveFailed(err)
	}
	a.p.OK("saved")
	return 0
}
