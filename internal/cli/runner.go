// Package cli maps positional arguments onto todo commands.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todocat/internal/config"
	"github.com/idilsaglam/todocat/internal/logging"
	"github.com/idilsaglam/todocat/internal/model"
	"github.com/idilsaglam/todocat/internal/store/jsonstore"
	"github.com/idilsaglam/todocat/internal/ui"
)

// BrowseFunc runs the interactive browser over todos.
type BrowseFunc func(todos []model.Todo, theme ui.Theme) ([]model.Todo, bool, error)

// Options tune where data lives and where output goes.
type Options struct {
	TodosPath      string
	CategoriesPath string
	Theme          string

	Stdout, Stderr io.Writer
	Logger         *log.Logger
	Browse         BrowseFunc
}

type app struct {
	todos      *jsonstore.File[[]model.Todo, model.Todo]
	categories *jsonstore.File[[]string, string]
	p          *ui.Printer
	log        *log.Logger
	browse     BrowseFunc
}

func newApp(opt Options) *app {
	if opt.TodosPath == "" || opt.CategoriesPath == "" {
		cfg := config.Default()
		if opt.TodosPath == "" {
			opt.TodosPath = cfg.TodosPath()
		}
		if opt.CategoriesPath == "" {
			opt.CategoriesPath = cfg.CategoriesPath()
		}
	}
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	browse := opt.Browse
	if browse == nil {
		browse = ui.Browse
	}
	return &app{
		todos:      jsonstore.Todos(opt.TodosPath, logger),
		categories: jsonstore.Categories(opt.CategoriesPath, logger),
		p:          ui.NewPrinter(opt.Stdout, opt.Stderr, opt.Theme),
		log:        logger,
		browse:     browse,
	}
}

// Run dispatches a command and returns the process exit code (0 ok, 1 error).
func Run(args []string, opt Options) int {
	a := newApp(opt)
	if len(args) == 0 {
		printUsage(a.p.Err)
		return 1
	}
	cmd, rest := args[0], args[1:]
	a.log.Debug("dispatch", "command", cmd, "args", len(rest))

	switch cmd {
	case "help", "-h", "--help":
		printUsage(a.p.Out)
		return 0

	case "add":
		if len(rest) == 0 {
			a.p.Fail("Usage: todo add [--cat <category>] <text>")
			return 1
		}
		if rest[0] == "--cat" {
			if len(rest) < 3 {
				a.p.Fail("Usage: todo add --cat <category> <text>")
				return 1
			}
			return a.doAddWithCategory(rest[1], strings.Join(rest[2:], " "))
		}
		return a.doAdd(strings.Join(rest, " "), model.Category{})

	case "list", "ls":
		return a.doList()

	case "done":
		id, code := a.parseID("done", rest)
		if code != 0 {
			return code
		}
		return a.doDone(id)

	case "remove", "rm":
		id, code := a.parseID("remove", rest)
		if code != 0 {
			return code
		}
		return a.doRemove(id)

	case "category":
		if len(rest) == 0 {
			a.p.Fail("Usage: todo category <add|list>")
			return 1
		}
		switch rest[0] {
		case "add":
			if len(rest) < 2 {
				a.p.Fail("Usage: todo category add <name>")
				return 1
			}
			return a.doCategoryAdd(rest[1])
		case "list":
			return a.doCategoryList()
		default:
			a.p.Fail("Unknown subcommand: category " + rest[0])
			return 1
		}

	case "stats":
		return a.doStats()

	case "browse":
		return a.doBrowse()
	}

	a.p.Fail("Unknown command: " + cmd)
	fmt.Fprintln(a.p.Err)
	printUsage(a.p.Err)
	return 1
}

func (a *app) parseID(cmd string, rest []string) (int, int) {
	if len(rest) == 0 {
		a.p.Fail(fmt.Sprintf("Usage: todo %s <id>", cmd))
		return 0, 1
	}
	id, err := strconv.Atoi(rest[0])
	if err != nil || id < 0 {
		a.p.Fail("Invalid id: " + rest[0])
		return 0, 1
	}
	return id, 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny CLI with categories

Usage:
  todo [-config <file>] [-theme <classic|neon|mono>] [-v] <command> [args]

Commands:
  add [--cat <category>] <text>   Add a new todo
  list                            List all todos
  done <id>                       Mark a todo as done
  remove <id>                     Remove a todo
  category add <name>             Add a custom category
  category list                   List all categories
  stats                           Show progress and per-category counts
  browse                          Browse todos interactively

Examples:
  todo add buy milk
  todo add --cat work "write the report"
  todo done 2
  todo category add Errands
`)
}
