package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todocat/internal/cli"
	"github.com/idilsaglam/todocat/internal/config"
	"github.com/idilsaglam/todocat/internal/logging"
)

func main() {
	// Root flags must come before the command; parsing stops at the first
	// positional argument so `add --cat` reaches the CLI runner untouched.
	configPath := flag.String("config", "", "path to a TOML config file (default ~/.todo.toml)")
	theme := flag.String("theme", "", "output theme: classic, neon or mono")
	verbose := flag.Bool("v", false, "debug logging on stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	logger := logging.FromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("config", "data_dir", cfg.DataDir, "theme", cfg.Theme)

	os.Exit(cli.Run(flag.Args(), cli.Options{
		TodosPath:      cfg.TodosPath(),
		CategoriesPath: cfg.CategoriesPath(),
		Theme:          cfg.Theme,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Logger:         logger,
	}))
}
