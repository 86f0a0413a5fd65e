package model

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("todo not found")

// Todo is one persisted task. IDs are assigned as current max + 1.
type Todo struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Done     bool     `json:"done"`
	Category Category `json:"category,omitzero"`
}

// Label renders the " [cat]" suffix, or "" when untagged.
func (t Todo) Label() string {
	if t.Category.IsZero() {
		return ""
	}
	return " [" + t.Category.String() + "]"
}

// Line renders a todo the way `list` prints it, e.g. "[x] #2 [work]: call Bob".
func (t Todo) Line() string {
	mark := " "
	if t.Done {
		mark = "x"
	}
	return fmt.Sprintf("[%s] #%d%s: %s", mark, t.ID, t.Label(), t.Text)
}

// NextID returns one more than the largest ID, or 1 for an empty list.
func NextID(todos []Todo) int {
	highest := 0
	for _, t := range todos {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest + 1
}

// Find returns the index of the todo with id, or -1.
func Find(todos []Todo, id int) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// RemoveID drops every todo with id and reports whether any matched.
func RemoveID(todos []Todo, id int) ([]Todo, bool) {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out, len(out) != len(todos)
}

// Stats counts done and pending todos.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
