package block

import (
	"github.com/arthur-debert/woah/pkg/molang"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// Permutation overrides components while its condition holds.
type Permutation struct {
	condition  molang.Expression
	components map[string]any
}

func NewPermutation(condition molang.Expression, components ...types.Component) Permutation {
	return Permutation{
		condition:  condition,
		components: types.ComponentMap(components...),
	}
}

func (p Permutation) Condition() molang.Expression { return p.condition }
func (p Permutation) Components() map[string]any   { return types.CloneComponents(p.components) }

func (p Permutation) Serialize(env render.Env) (string, error) {
	components, err := types.MarshalComponents(p.components)
	if err != nil {
		return "", err
	}
	return env.Engine.Render(render.TemplateBlockPermutation, render.Vars{
		"condition":  p.condition.Serialize(),
		"components": components,
	})
}
