package block

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

const (
	PlacementDirectionID = "minecraft:placement_direction"
	PlacementPositionID  = "minecraft:placement_position"
)

// Trait is a fixed-shape capability attached to a block. The set of
// implementations is closed: PlacementDirection and PlacementPosition.
type Trait interface {
	render.Serializable
	// TraitID is the well-known identifier the trait renders under.
	TraitID() string
	trait()
}

// DirectionState is a state enabled by the placement direction trait.
type DirectionState int

const (
	CardinalDirection DirectionState = iota
	FacingDirection
)

func (d DirectionState) String() string {
	switch d {
	case CardinalDirection:
		return "minecraft:cardinal_direction"
	case FacingDirection:
		return "minecraft:facing_direction"
	default:
		return fmt.Sprintf("DirectionState(%d)", int(d))
	}
}

// PositionState is a state enabled by the placement position trait.
type PositionState int

const (
	BlockFace PositionState = iota
	VerticalHalf
)

func (p PositionState) String() string {
	switch p {
	case BlockFace:
		return "minecraft:block_face"
	case VerticalHalf:
		return "minecraft:vertical_half"
	default:
		return fmt.Sprintf("PositionState(%d)", int(p))
	}
}

// PlacementDirection records the direction the player faced when placing
// the block.
type PlacementDirection struct {
	EnabledStates   []DirectionState
	YRotationOffset uint8
}

// PlacementPosition records where on the neighbouring block the block was
// placed.
type PlacementPosition struct {
	EnabledStates []PositionState
}

func (PlacementDirection) trait() {}
func (PlacementPosition) trait()  {}

func (PlacementDirection) TraitID() string { return PlacementDirectionID }
func (PlacementPosition) TraitID() string  { return PlacementPositionID }

func (t PlacementDirection) Serialize(env render.Env) (string, error) {
	states := make([]string, 0, len(t.EnabledStates))
	for _, s := range t.EnabledStates {
		if s != CardinalDirection && s != FacingDirection {
			return "", errors.Newf(errors.ErrData, "unknown placement direction state %d", int(s))
		}
		states = append(states, s.String())
	}
	return renderTrait(env, t.TraitID(), states, fmt.Sprintf(`,"y_rotation_offset": %d`, t.YRotationOffset))
}

func (t PlacementPosition) Serialize(env render.Env) (string, error) {
	states := make([]string, 0, len(t.EnabledStates))
	for _, s := range t.EnabledStates {
		if s != BlockFace && s != VerticalHalf {
			return "", errors.Newf(errors.ErrData, "unknown placement position state %d", int(s))
		}
		states = append(states, s.String())
	}
	return renderTrait(env, t.TraitID(), states, "")
}

func renderTrait(env render.Env, id string, states []string, additional string) (string, error) {
	quoted := make([]string, 0, len(states))
	for _, s := range states {
		q, err := types.MarshalJSON(s)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrData, "trait state is not encodable")
		}
		quoted = append(quoted, q)
	}
	return env.Engine.Render(render.TemplateBlockTrait, render.Vars{
		"id":             id,
		"enabled_states": strings.Join(quoted, ","),
		"additional":     additional,
	})
}

// ParseDirectionState maps a rendered state name back to its value.
func ParseDirectionState(s string) (DirectionState, error) {
	for _, d := range []DirectionState{CardinalDirection, FacingDirection} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, errors.Newf(errors.ErrData, "unknown placement direction state %q", s)
}

// ParsePositionState maps a rendered state name back to its value.
func ParsePositionState(s string) (PositionState, error) {
	for _, p := range []PositionState{BlockFace, VerticalHalf} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, errors.Newf(errors.ErrData, "unknown placement position state %q", s)
}
