// Package jsonstore persists flat JSON collections.
//
// Each collection lives in its own file and is always read and written
// whole. There is no locking; concurrent invocations race and the last
// writer wins, which is fine for a local single-user CLI.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todocat/internal/logging"
	"github.com/idilsaglam/todocat/internal/model"
)

// File is a JSON array of E stored at Path.
type File[S ~[]E, E any] struct {
	Path   string
	Schema *jsonschema.Schema // optional; checked before decoding
	Log    *log.Logger
}

// Todos returns the store for the todo list.
func Todos(path string, logger *log.Logger) *File[[]model.Todo, model.Todo] {
	return &File[[]model.Todo, model.Todo]{Path: path, Schema: todosSchema, Log: logger}
}

// Categories returns the store for the custom category registry.
func Categories(path string, logger *log.Logger) *File[[]string, string] {
	return &File[[]string, string]{Path: path, Schema: categoriesSchema, Log: logger}
}

func (f *File[S, E]) logger() *log.Logger {
	if f.Log == nil {
		return logging.Discard()
	}
	return f.Log
}

// Load reads the whole collection. A missing file is an empty collection.
func (f *File[S, E]) Load() (S, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger().Debug("no data file yet", "path", f.Path)
			return S{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	if f.Schema != nil {
		var doc any
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Path, err)
		}
		if err := f.Schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Path, err)
		}
	}
	var items S
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	if items == nil {
		items = S{}
	}
	f.logger().Debug("loaded", "path", f.Path, "count", len(items))
	return items, nil
}

// Save overwrites the file with the pretty-printed collection.
func (f *File[S, E]) Save(items S) error {
	if items == nil {
		items = S{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(f.Path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	f.logger().Debug("saved", "path", f.Path, "count", len(items))
	return nil
}
