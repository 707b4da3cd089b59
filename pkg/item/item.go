// Package item describes custom items and their client-side textures.
package item

import (
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// Item is a behavior pack item definition. Values are immutable: the With
// methods return modified copies.
type Item struct {
	id            types.Identifier
	formatVersion types.SemVer
	components    map[string]any
}

// New creates an item from its identifier and component declarations.
func New(id types.Identifier, components ...types.Component) Item {
	return Item{
		id:            id,
		formatVersion: types.Latest(),
		components:    types.ComponentMap(components...),
	}
}

func (i Item) ID() types.Identifier        { return i.id }
func (i Item) FormatVersion() types.SemVer { return i.formatVersion }
func (i Item) Components() map[string]any  { return types.CloneComponents(i.components) }

// WithFormatVersion returns a copy using the given format version.
func (i Item) WithFormatVersion(v types.SemVer) Item {
	i.formatVersion = v
	return i
}

// Serialize renders the item definition file.
func (i Item) Serialize(env render.Env) (string, error) {
	if err := i.id.Validate(); err != nil {
		return "", err
	}
	components, err := types.MarshalComponents(i.components)
	if err != nil {
		return "", err
	}

	return env.Engine.Render(render.TemplateItem, render.Vars{
		"format_version": i.formatVersion.RenderDotted(),
		"components":     components,
		"id":             i.id.Render(),
	})
}
