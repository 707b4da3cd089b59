package content

import (
	"path/filepath"

	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/molang"
	"github.com/arthur-debert/woah/pkg/types"
)

// File is the decoded form of one declaration file.
type File struct {
	Metadata *MetadataDecl `mapstructure:"metadata"`
	Items    []ItemDecl    `mapstructure:"items"`
	Blocks   []BlockDecl   `mapstructure:"blocks"`

	// Path is where the file was read from; texture paths resolve against
	// its directory.
	Path string `mapstructure:"-"`
}

type MetadataDecl struct {
	Name             string             `mapstructure:"name"`
	Version          *types.SemVer      `mapstructure:"version"`
	Author           string             `mapstructure:"author"`
	Description      string             `mapstructure:"description"`
	MinEngineVersion *types.SemVer      `mapstructure:"min_engine_version"`
	ScriptModules    []ScriptModuleDecl `mapstructure:"script_modules"`
}

type ScriptModuleDecl struct {
	Name    string       `mapstructure:"name"`
	Version types.SemVer `mapstructure:"version"`
}

type ItemDecl struct {
	ID            types.Identifier `mapstructure:"id"`
	FormatVersion *types.SemVer    `mapstructure:"format_version"`
	Texture       string           `mapstructure:"texture"`
	Components    map[string]any   `mapstructure:"components"`
}

type BlockDecl struct {
	ID            types.Identifier  `mapstructure:"id"`
	FormatVersion *types.SemVer     `mapstructure:"format_version"`
	Texture       string            `mapstructure:"texture"`
	Components    map[string]any    `mapstructure:"components"`
	States        []StateDecl       `mapstructure:"states"`
	Permutations  []PermutationDecl `mapstructure:"permutations"`
	Traits        []TraitDecl       `mapstructure:"traits"`
}

// StateDecl sets exactly one of its value fields.
type StateDecl struct {
	ID      types.Identifier `mapstructure:"id"`
	Strings []string         `mapstructure:"strings"`
	Ints    []int64          `mapstructure:"ints"`
	Bool    bool             `mapstructure:"bool"`
	Range   []int32          `mapstructure:"range"`
}

type PermutationDecl struct {
	Condition  ConditionDecl  `mapstructure:"condition"`
	Components map[string]any `mapstructure:"components"`
}

// ConditionDecl is either a bare query string or a query combined with
// nested conditions through and or or (not both).
type ConditionDecl struct {
	Query string          `mapstructure:"query"`
	And   []ConditionDecl `mapstructure:"and"`
	Or    []ConditionDecl `mapstructure:"or"`
}

// TraitDecl sets exactly one trait.
type TraitDecl struct {
	PlacementDirection *DirectionDecl `mapstructure:"placement_direction"`
	PlacementPosition  *PositionDecl  `mapstructure:"placement_position"`
}

type DirectionDecl struct {
	EnabledStates   []string `mapstructure:"enabled_states"`
	YRotationOffset uint8    `mapstructure:"y_rotation_offset"`
}

type PositionDecl struct {
	EnabledStates []string `mapstructure:"enabled_states"`
}

func (d MetadataDecl) toMetadata() metadata.AddonMetadata {
	md := metadata.AddonMetadata{
		Name:             d.Name,
		Version:          types.NewSemVer(1, 0, 0),
		Author:           d.Author,
		Description:      d.Description,
		MinEngineVersion: types.Latest(),
	}
	if d.Version != nil {
		md.Version = *d.Version
	}
	if d.MinEngineVersion != nil {
		md.MinEngineVersion = *d.MinEngineVersion
	}
	for _, sm := range d.ScriptModules {
		md.ScriptModules = append(md.ScriptModules, metadata.ScriptModule{Name: sm.Name, Version: sm.Version})
	}
	return md
}

func (d ItemDecl) toItem() (item.Item, error) {
	if err := d.ID.Validate(); err != nil {
		return item.Item{}, err
	}
	decls := components(d.Components)
	if err := types.ValidateComponents(decls...); err != nil {
		return item.Item{}, err
	}
	it := item.New(d.ID, decls...)
	if d.FormatVersion != nil {
		it = it.WithFormatVersion(*d.FormatVersion)
	}
	return it, nil
}

func (d BlockDecl) toBlock() (block.Block, error) {
	if err := d.ID.Validate(); err != nil {
		return block.Block{}, err
	}
	decls := components(d.Components)
	if err := types.ValidateComponents(decls...); err != nil {
		return block.Block{}, err
	}
	b := block.New(d.ID, decls...)
	if d.FormatVersion != nil {
		b = b.WithFormatVersion(*d.FormatVersion)
	}

	states := make([]block.State, 0, len(d.States))
	for _, s := range d.States {
		state, err := s.toState()
		if err != nil {
			return block.Block{}, errors.Wrapf(err, errors.ErrData, "block %s", d.ID)
		}
		states = append(states, state)
	}

	permutations := make([]block.Permutation, 0, len(d.Permutations))
	for _, p := range d.Permutations {
		cond, err := p.Condition.toExpression()
		if err != nil {
			return block.Block{}, errors.Wrapf(err, errors.ErrData, "block %s", d.ID)
		}
		permutations = append(permutations, block.NewPermutation(cond, components(p.Components)...))
	}

	traits := make([]block.Trait, 0, len(d.Traits))
	for _, t := range d.Traits {
		trait, err := t.toTrait()
		if err != nil {
			return block.Block{}, errors.Wrapf(err, errors.ErrData, "block %s", d.ID)
		}
		traits = append(traits, trait)
	}

	return b.WithStates(states...).WithPermutations(permutations...).WithTraits(traits...), nil
}

func (d StateDecl) toState() (block.State, error) {
	if err := d.ID.Validate(); err != nil {
		return block.State{}, err
	}

	var kinds []block.StateValues
	if len(d.Strings) > 0 {
		kinds = append(kinds, block.Strings(d.Strings))
	}
	if len(d.Ints) > 0 {
		kinds = append(kinds, block.Ints(d.Ints))
	}
	if d.Bool {
		kinds = append(kinds, block.Bools{})
	}
	if d.Range != nil {
		if len(d.Range) != 2 {
			return block.State{}, errors.Newf(errors.ErrData, "state %s: range needs [min, max]", d.ID)
		}
		kinds = append(kinds, block.Range{Min: d.Range[0], Max: d.Range[1]})
	}
	if len(kinds) != 1 {
		return block.State{}, errors.Newf(errors.ErrData, "state %s must set exactly one of strings, ints, bool, range", d.ID)
	}
	return block.NewState(d.ID, kinds[0]), nil
}

func (d ConditionDecl) toExpression() (molang.Expression, error) {
	if d.Query == "" {
		return molang.Expression{}, errors.New(errors.ErrData, "condition has an empty query")
	}
	if len(d.And) > 0 && len(d.Or) > 0 {
		return molang.Expression{}, errors.Newf(errors.ErrData, "condition %q mixes and with or", d.Query)
	}

	e := molang.New(d.Query)
	for _, child := range d.And {
		c, err := child.toExpression()
		if err != nil {
			return molang.Expression{}, err
		}
		e = e.And(c)
	}
	for _, child := range d.Or {
		c, err := child.toExpression()
		if err != nil {
			return molang.Expression{}, err
		}
		e = e.Or(c)
	}
	return e, nil
}

func (d TraitDecl) toTrait() (block.Trait, error) {
	switch {
	case d.PlacementDirection != nil && d.PlacementPosition == nil:
		t := block.PlacementDirection{YRotationOffset: d.PlacementDirection.YRotationOffset}
		for _, s := range d.PlacementDirection.EnabledStates {
			state, err := block.ParseDirectionState(s)
			if err != nil {
				return nil, err
			}
			t.EnabledStates = append(t.EnabledStates, state)
		}
		return t, nil
	case d.PlacementPosition != nil && d.PlacementDirection == nil:
		t := block.PlacementPosition{}
		for _, s := range d.PlacementPosition.EnabledStates {
			state, err := block.ParsePositionState(s)
			if err != nil {
				return nil, err
			}
			t.EnabledStates = append(t.EnabledStates, state)
		}
		return t, nil
	default:
		return nil, errors.New(errors.ErrData, "trait must set exactly one of placement_direction, placement_position")
	}
}

func components(m map[string]any) []types.Component {
	decls := make([]types.Component, 0, len(m))
	for _, name := range types.ComponentNames(m) {
		decls = append(decls, types.NewComponent(name, m[name]))
	}
	return decls
}

// texturePath resolves p against the directory of the declaring file.
func (f *File) texturePath(p string) string {
	if filepath.IsAbs(p) || f.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(f.Path), p)
}
