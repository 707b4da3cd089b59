// Package block describes custom blocks: their states, conditional
// permutations, placement traits and terrain textures.
package block

import (
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// Block is a behavior pack block definition. Values are immutable: the With
// methods return independent copies with exactly one field replaced.
type Block struct {
	id            types.Identifier
	components    map[string]any
	formatVersion types.SemVer
	states        []State
	permutations  []Permutation
	traits        []Trait
}

// New creates a block with no states, permutations or traits.
func New(id types.Identifier, components ...types.Component) Block {
	return Block{
		id:            id,
		components:    types.ComponentMap(components...),
		formatVersion: types.Latest(),
	}
}

func (b Block) ID() types.Identifier        { return b.id }
func (b Block) FormatVersion() types.SemVer { return b.formatVersion }
func (b Block) Components() map[string]any  { return types.CloneComponents(b.components) }
func (b Block) States() []State             { return clone(b.states) }
func (b Block) Permutations() []Permutation { return clone(b.permutations) }
func (b Block) Traits() []Trait             { return clone(b.traits) }

// WithFormatVersion returns a copy using the given format version.
func (b Block) WithFormatVersion(v types.SemVer) Block {
	b.formatVersion = v
	return b
}

// WithStates returns a copy whose states are replaced by states.
func (b Block) WithStates(states ...State) Block {
	b.states = clone(states)
	return b
}

// WithPermutations returns a copy whose permutations are replaced.
func (b Block) WithPermutations(permutations ...Permutation) Block {
	b.permutations = clone(permutations)
	return b
}

// WithTraits returns a copy whose traits are replaced.
func (b Block) WithTraits(traits ...Trait) Block {
	b.traits = clone(traits)
	return b
}

// Serialize renders the block definition file. States, traits and
// permutations are serialized first and spliced in comma separated.
func (b Block) Serialize(env render.Env) (string, error) {
	if err := b.id.Validate(); err != nil {
		return "", err
	}
	components, err := types.MarshalComponents(b.components)
	if err != nil {
		return "", err
	}
	states, err := render.Join(env, b.states, ",")
	if err != nil {
		return "", err
	}
	traits, err := render.Join(env, b.traits, ",")
	if err != nil {
		return "", err
	}
	permutations, err := render.Join(env, b.permutations, ",")
	if err != nil {
		return "", err
	}

	return env.Engine.Render(render.TemplateBlock, render.Vars{
		"id":             b.id.Render(),
		"components":     components,
		"format_version": b.formatVersion.RenderDotted(),
		"states":         states,
		"traits":         traits,
		"permutations":   permutations,
	})
}

func clone[T any](xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}
