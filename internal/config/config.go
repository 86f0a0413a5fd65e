// Package config resolves where todo keeps its data and how it looks.
//
// Sources, lowest priority first: defaults, the TOML config file, then root
// flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	todosFileName      = ".todos.json"
	categoriesFileName = ".todo_categories.json"
	configFileName     = ".todo.toml"
)

// Config holds resolved settings.
type Config struct {
	DataDir   string `toml:"data_dir"`
	Theme     string `toml:"theme"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:   HomeDir(),
		Theme:     "classic",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// HomeDir returns the user's home directory, or "." if it cannot be found.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// DefaultPath is the config file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// Load applies the file at path over the defaults. An empty path means
// DefaultPath, and a missing default file is not an error; a missing
// explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = HomeDir()
	}
	return cfg, nil
}

// TodosPath is the todo list file.
func (c Config) TodosPath() string {
	return filepath.Join(c.DataDir, todosFileName)
}

// CategoriesPath is the custom category registry file.
func (c Config) CategoriesPath() string {
	return filepath.Join(c.DataDir, categoriesFileName)
}

func expandHome(p string) string {
	if p == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(HomeDir(), p[2:])
	}
	return p
}
