package jsonstore

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/todocat/internal/model"
)

func TestLoadMissingReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	todos, err := Todos(filepath.Join(dir, "nope.json"), nil).Load()
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Fatalf("Load(missing) = %#v, want empty non-nil slice", todos)
	}

	cats, err := Categories(filepath.Join(dir, "nope2.json"), nil).Load()
	if err != nil {
		t.Fatalf("Load(missing categories) error: %v", err)
	}
	if cats == nil || len(cats) != 0 {
		t.Fatalf("Load(missing categories) = %#v", cats)
	}
}

func TestTodosRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		todos []model.Todo
	}{
		{name: "empty", todos: []model.Todo{}},
		{name: "mixed categories", todos: []model.Todo{
			{ID: 1, Text: "quarterly report", Category: model.Builtin(model.Work)},
			{ID: 2, Text: "buy milk", Done: true, Category: model.CustomCategory("Errands")},
			{ID: 5, Text: "", Done: false},
			{ID: 6, Text: "run", Category: model.Builtin(model.Health)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Todos(filepath.Join(t.TempDir(), ".todos.json"), nil)
			if err := f.Save(tt.todos); err != nil {
				t.Fatalf("Save error: %v", err)
			}
			got, err := f.Load()
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.todos) {
				t.Fatalf("round trip mismatch:\n got  %#v\n want %#v", got, tt.todos)
			}
		})
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	if err := Categories(path, nil).Save(nil); err != nil {
		t.Fatalf("Save(nil) error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("file = %q, want []", b)
	}
}

func TestSavePrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := Todos(path, nil).Save([]model.Todo{{ID: 1, Text: "a"}}); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	want := "[\n  {\n    \"id\": 1,\n    \"text\": \"a\",\n    \"done\": false\n  }\n]\n"
	if string(b) != want {
		t.Fatalf("file =\n%s\nwant\n%s", b, want)
	}
}

func TestCategoriesRoundTrip(t *testing.T) {
	f := Categories(filepath.Join(t.TempDir(), "cats.json"), nil)
	want := []string{"Errands", "garden", "Side Project"}
	if err := f.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadLegacyCustomCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	raw := `[{"id": 1, "text": "milk", "done": false, "category": {"custom": "Errands"}},
	         {"id": 2, "text": "gym", "done": true, "category": "health"}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Todos(path, nil).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got[0].Category != model.CustomCategory("Errands") {
		t.Errorf("legacy category = %#v", got[0].Category)
	}
	if got[1].Category != model.Builtin(model.Health) {
		t.Errorf("builtin category = %#v", got[1].Category)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"wrong shape", `{"id": 1}`},
		{"missing field", `[{"id": 1, "text": "x"}]`},
		{"wrong type", `[{"id": "one", "text": "x", "done": false}]`},
		{"fractional id", `[{"id": 1.5, "text": "x", "done": false}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "todos.json")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Todos(path, nil).Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the path", err)
			}
		})
	}
}

func TestCategoriesRejectsNonStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	if err := os.WriteFile(path, []byte(`["ok", 3]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Categories(path, nil).Load(); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestSaveReportsWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "todos.json")
	err := Todos(path, nil).Save([]model.Todo{{ID: 1}})
	if err == nil || !strings.Contains(err.Error(), "write "+path) {
		t.Fatalf("Save error = %v", err)
	}
}
