package types

import (
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Identifier is a namespaced name such as "woah:ruby".
type Identifier struct {
	namespace string
	path      string
}

// NewIdentifier creates an Identifier from its two parts.
func NewIdentifier(namespace, path string) Identifier {
	return Identifier{namespace: namespace, path: path}
}

// ParseIdentifier parses the colon-joined form "namespace:path".
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		return Identifier{}, errors.Newf(errors.ErrData, "identifier %q is missing a namespace", s)
	}
	id := NewIdentifier(ns, path)
	if err := id.Validate(); err != nil {
		return Identifier{}, err
	}
	return id, nil
}

func (id Identifier) Namespace() string { return id.namespace }
func (id Identifier) Path() string      { return id.path }

// Render returns the canonical "namespace:path" form.
func (id Identifier) Render() string {
	return id.namespace + ":" + id.path
}

// RenderUnderscore returns the filesystem-safe "namespace_path" form.
func (id Identifier) RenderUnderscore() string {
	return id.namespace + "_" + id.path
}

func (id Identifier) String() string {
	return id.Render()
}

// Validate checks that both parts are present and can be used as a file
// name component.
func (id Identifier) Validate() error {
	if id.namespace == "" || id.path == "" {
		return errors.Newf(errors.ErrData, "identifier %q must have a namespace and a path", id.Render()).
			WithDetail("namespace", id.namespace).
			WithDetail("path", id.path)
	}
	if !IsPathSafe(id.namespace) || !IsPathSafe(id.path) {
		return errors.Newf(errors.ErrData, "identifier %q must not contain path separators or \"..\"", id.Render()).
			WithDetail("namespace", id.namespace).
			WithDetail("path", id.path)
	}
	return nil
}

// IsPathSafe reports whether s stays a single path element when joined
// under a directory: no separators and no "..".
func IsPathSafe(s string) bool {
	return !strings.ContainsAny(s, `/\`) && !strings.Contains(s, "..")
}

// MarshalText renders the canonical form.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.Render()), nil
}

// UnmarshalText lets declaration files spell identifiers as "namespace:path".
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
