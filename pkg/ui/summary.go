package ui

import (
	"time"

	"github.com/arthur-debert/woah/pkg/codegen"
)

// Identity states reported in a Summary.
const (
	IdentityCreated = "created"
	IdentityReused  = "reused"
)

// Summary is the renderable outcome of one build.
type Summary struct {
	Addon         string        `json:"addon"`
	Output        string        `json:"output"`
	Generators    []string      `json:"generators"`
	Items         int           `json:"items"`
	ItemTextures  int           `json:"item_textures"`
	Blocks        int           `json:"blocks"`
	BlockTextures int           `json:"block_textures"`
	Identity      string        `json:"identity"`
	Duration      time.Duration `json:"-"`
	DurationMS    int64         `json:"duration_ms"`
}

// NewSummary describes res for the addon named addon.
func NewSummary(addon string, res *codegen.Result) Summary {
	s := Summary{
		Addon:         addon,
		Output:        res.Output,
		Generators:    append([]string(nil), res.Generators...),
		Items:         res.Counts.Items,
		ItemTextures:  res.Counts.ItemTextures,
		Blocks:        res.Counts.Blocks,
		BlockTextures: res.Counts.BlockTextures,
		Identity:      IdentityReused,
		Duration:      res.Duration,
		DurationMS:    res.Duration.Milliseconds(),
	}
	if res.IdentityCreated {
		s.Identity = IdentityCreated
	}
	return s
}

// Total is the number of generated entities of every kind.
func (s Summary) Total() int {
	return s.Items + s.ItemTextures + s.Blocks + s.BlockTextures
}
