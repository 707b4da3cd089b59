package types

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Component is a single declaration such as
// NewComponent("minecraft:damage", map[string]any{"value": 7}).
// Values are arbitrary JSON-shaped data.
type Component struct {
	Name  string
	Value any
}

// NewComponent creates a component declaration.
func NewComponent(name string, value any) Component {
	return Component{Name: name, Value: value}
}

// ComponentMap converts declarations into a name to value mapping.
// A later declaration replaces an earlier one with the same name. Nested
// maps and slices are copied so the caller cannot change them afterwards.
func ComponentMap(decls ...Component) map[string]any {
	out := make(map[string]any, len(decls))
	for _, decl := range decls {
		out[decl.Name] = cloneValue(decl.Value)
	}
	return out
}

// ValidateComponents reports the first declaration with an empty name or a
// value that cannot be encoded as JSON.
func ValidateComponents(decls ...Component) error {
	for i, decl := range decls {
		if decl.Name == "" {
			return errors.New(errors.ErrData, "component declaration has an empty name").
				WithDetail("index", i)
		}
		if _, err := MarshalJSON(decl.Value); err != nil {
			return errors.Wrapf(err, errors.ErrData, "component %s cannot be encoded as JSON", decl.Name).
				WithDetail("component", decl.Name)
		}
	}
	return nil
}

// CloneComponents returns a deep copy of a component mapping.
func CloneComponents(components map[string]any) map[string]any {
	out := make(map[string]any, len(components))
	for name, value := range components {
		out[name] = cloneValue(value)
	}
	return out
}

// ComponentNames returns the names of a component mapping in sorted order.
func ComponentNames(components map[string]any) []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalComponents encodes a component mapping as compact JSON with keys in
// sorted order. Empty names and values that cannot be encoded are data errors.
func MarshalComponents(components map[string]any) (string, error) {
	if _, ok := components[""]; ok {
		return "", errors.New(errors.ErrData, "component declaration has an empty name")
	}
	if components == nil {
		components = map[string]any{}
	}
	text, err := MarshalJSON(components)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrData, "component declarations cannot be encoded as JSON")
	}
	return text, nil
}

// MarshalJSON encodes v without HTML escaping, so Molang operators such as
// "&&" and "<" survive as written.
func MarshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
