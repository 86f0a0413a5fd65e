package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("NextID(empty) = %d, want 1", got)
	}
	todos := []Todo{{ID: 3}, {ID: 7}, {ID: 2}}
	if got := NextID(todos); got != 8 {
		t.Fatalf("NextID = %d, want 8", got)
	}
}

func TestRemoveID(t *testing.T) {
	todos := []Todo{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 3, Text: "c"}}

	out, ok := RemoveID(todos, 2)
	if !ok {
		t.Fatal("RemoveID(2) reported no match")
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Fatalf("RemoveID(2) = %+v", out)
	}
	if todos[1].ID != 2 {
		t.Fatal("RemoveID modified its input")
	}

	out, ok = RemoveID(todos, 9)
	if ok || len(out) != 3 {
		t.Fatalf("RemoveID(9) = %+v, %v", out, ok)
	}
}

func TestFind(t *testing.T) {
	todos := []Todo{{ID: 4}, {ID: 5}}
	if Find(todos, 5) != 1 {
		t.Error("Find(5) should be index 1")
	}
	if Find(todos, 6) != -1 {
		t.Error("Find(6) should be -1")
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		todo Todo
		want string
	}{
		{Todo{ID: 1, Text: "buy milk"}, "[ ] #1: buy milk"},
		{Todo{ID: 1, Text: "buy milk", Done: true}, "[x] #1: buy milk"},
		{Todo{ID: 2, Text: "report", Category: Builtin(Work)}, "[ ] #2 [work]: report"},
		{Todo{ID: 3, Text: "", Category: CustomCategory("Errands")}, "[ ] #3 [Errands]: "},
	}
	for _, tt := range tests {
		if got := tt.todo.Line(); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestTodoJSONOmitsMissingCategory(t *testing.T) {
	b, err := json.Marshal(Todo{ID: 1, Text: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "category") {
		t.Fatalf("untagged todo serialized a category: %s", b)
	}

	b, err = json.Marshal(Todo{ID: 2, Text: "y", Category: Builtin(Shopping)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"category":"shopping"`) {
		t.Fatalf("expected lowercase built-in name: %s", b)
	}
}

func TestStats(t *testing.T) {
	done, pending := Stats([]Todo{{Done: true}, {}, {}})
	if done != 1 || pending != 2 {
		t.Fatalf("Stats = %d/%d, want 1/2", done, pending)
	}
}
