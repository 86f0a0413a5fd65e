package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrBuiltinCategory   = errors.New("built-in category")
	ErrDuplicateCategory = errors.New("category already exists")
)

// Kind tags which variant a Category holds.
type Kind uint8

const (
	None Kind = iota
	Work
	Personal
	Shopping
	Health
	Custom
)

var builtinNames = [...]string{
	Work:     "work",
	Personal: "personal",
	Shopping: "shopping",
	Health:   "health",
}

// Category is either one of the four built-ins or a user-registered custom
// name. The zero value means "no category".
type Category struct {
	kind Kind
	name string
}

// Builtin returns the built-in category for k. Custom and None yield the zero value.
func Builtin(k Kind) Category {
	if k < Work || k > Health {
		return Category{}
	}
	return Category{kind: k}
}

// CustomCategory wraps a registered name, keeping its casing.
func CustomCategory(name string) Category {
	return Category{kind: Custom, name: name}
}

func (c Category) Kind() Kind     { return c.kind }
func (c Category) IsZero() bool   { return c.kind == None }
func (c Category) IsCustom() bool { return c.kind == Custom }

func (c Category) String() string {
	switch c.kind {
	case Work, Personal, Shopping, Health:
		return builtinNames[c.kind]
	case Custom:
		return c.name
	}
	return ""
}

// BuiltinNames lists the built-in categories in display order.
func BuiltinNames() []string {
	return []string{"work", "personal", "shopping", "health"}
}

func builtinKind(name string) (Kind, bool) {
	lower := strings.ToLower(name)
	for k := Work; k <= Health; k++ {
		if builtinNames[k] == lower {
			return k, true
		}
	}
	return None, false
}

// IsBuiltinName reports whether name matches a built-in, ignoring case.
func IsBuiltinName(name string) bool {
	_, ok := builtinKind(name)
	return ok
}

// LookupCustom returns the registered spelling of name, ignoring case.
func LookupCustom(name string, custom []string) (string, bool) {
	for _, c := range custom {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// ParseCategory resolves user input against the built-ins and the custom
// registry. A custom match carries the registry's casing, not the input's.
func ParseCategory(name string, custom []string) (Category, error) {
	if k, ok := builtinKind(name); ok {
		return Builtin(k), nil
	}
	if stored, ok := LookupCustom(name, custom); ok {
		return CustomCategory(stored), nil
	}
	return Category{}, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
}

// ValidateNewCategory checks that name may be appended to the registry.
func ValidateNewCategory(name string, custom []string) error {
	if IsBuiltinName(name) {
		return fmt.Errorf("%w: %s", ErrBuiltinCategory, name)
	}
	if _, ok := LookupCustom(name, custom); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a plain string, or the {"custom": "Name"} object
// older data files wrote for custom categories.
func (c *Category) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Category{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if k, ok := builtinKind(s); ok {
			*c = Builtin(k)
		} else {
			*c = CustomCategory(s)
		}
		return nil
	}
	var legacy struct {
		Custom *string `json:"custom"`
	}
	if err := json.Unmarshal(b, &legacy); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	if legacy.Custom == nil {
		return fmt.Errorf("category: expected string or {\"custom\": ...}, got %s", b)
	}
	*c = CustomCategory(*legacy.Custom)
	return nil
}
