package block

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// StateValues is the value domain of a block state. The set of
// implementations is closed: Strings, Bools, Ints and Range.
type StateValues interface {
	stateValues()
}

// Strings is a finite set of string values.
type Strings []string

// Bools is the fixed pair true, false.
type Bools struct{}

// Ints is a finite set of integer values.
type Ints []int64

// Range is the inclusive integer range [Min, Max].
type Range struct {
	Min int32
	Max int32
}

func (Strings) stateValues() {}
func (Bools) stateValues()   {}
func (Ints) stateValues()    {}
func (Range) stateValues()   {}

// State declares a runtime state a block can be in.
type State struct {
	id     types.Identifier
	values StateValues
}

// NewState creates a state with an explicit value domain.
func NewState(id types.Identifier, values StateValues) State {
	return State{id: id, values: values}
}

// StringState creates a state taking one of values.
func StringState(id types.Identifier, values ...string) State {
	return NewState(id, Strings(append([]string(nil), values...)))
}

// BoolState creates a true/false state.
func BoolState(id types.Identifier) State {
	return NewState(id, Bools{})
}

// IntState creates a state taking one of values.
func IntState(id types.Identifier, values ...int64) State {
	return NewState(id, Ints(append([]int64(nil), values...)))
}

// RangeState creates a state taking any integer in [min, max].
func RangeState(id types.Identifier, min, max int32) State {
	return NewState(id, Range{Min: min, Max: max})
}

func (s State) ID() types.Identifier { return s.id }
func (s State) Values() StateValues  { return s.values }

// Serialize renders the state's entry in the block description.
func (s State) Serialize(env render.Env) (string, error) {
	if err := s.id.Validate(); err != nil {
		return "", err
	}

	var values []string
	switch v := s.values.(type) {
	case Strings:
		for _, value := range v {
			q, err := types.MarshalJSON(value)
			if err != nil {
				return "", errors.Wrapf(err, errors.ErrData, "state %s has an unencodable value", s.id)
			}
			values = append(values, q)
		}
	case Bools:
		values = []string{"true", "false"}
	case Ints:
		for _, value := range v {
			values = append(values, strconv.FormatInt(value, 10))
		}
	case Range:
		if v.Min > v.Max {
			return "", errors.Newf(errors.ErrData, "state %s has an empty range %d..%d", s.id, v.Min, v.Max).
				WithDetail("state", s.id.Render())
		}
		return env.Engine.Render(render.TemplateBlockStateRange, render.Vars{
			"id":  s.id.Render(),
			"min": strconv.FormatInt(int64(v.Min), 10),
			"max": strconv.FormatInt(int64(v.Max), 10),
		})
	default:
		return "", errors.Newf(errors.ErrData, "state %s has no value domain", s.id)
	}

	return env.Engine.Render(render.TemplateBlockStateArray, render.Vars{
		"id":     s.id.Render(),
		"values": strings.Join(values, ","),
	})
}
