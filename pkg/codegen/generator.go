// Package codegen runs the build pipeline that turns registered content into
// package artifacts.
//
// A build is a fixed sequence of phases. Each phase reads one snapshot from
// the content registry and hands it to every configured Generator in turn:
//
//  1. Build: scaffold output directories
//  2. identity: create the identity file if it is missing
//  3. BuildManifest
//  4. BuildItems, then BuildClientItems
//  5. BuildBlocks, then BuildBlockTextures
//
// Phases 4 and 5 are interleaved per generator: the first generator runs
// BuildItems and BuildClientItems before the second generator runs either.
//
// The first error aborts the build. A failed build may leave a partially
// written output directory; building again regenerates every artifact and
// keeps the identity file.
package codegen

import (
	"strings"

	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/identity"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// Generator emits artifacts for one output format. Each method creates the
// directories it writes into.
type Generator interface {
	Name() string
	Build(out string) error
	BuildManifest(out string, md metadata.AddonMetadata, id identity.Identity) error
	BuildItems(out string, items []item.Item, md metadata.AddonMetadata) error
	BuildClientItems(out string, textures []item.Texture, md metadata.AddonMetadata) error
	BuildBlocks(out string, blocks []block.Block, md metadata.AddonMetadata) error
	BuildBlockTextures(out string, textures []block.Texture, md metadata.AddonMetadata) error
}

// Deps is what a Factory may build a generator from.
type Deps struct {
	FileSystem types.FS
	Engine     *render.Engine
}

// Factory creates a generator. Factories are registered by name so config
// can select generators.
type Factory func(deps Deps) (Generator, error)

// NewFactoryRegistry returns an empty generator factory registry.
func NewFactoryRegistry() registry.Registry[Factory] {
	return registry.New[Factory]()
}

// Resolve instantiates the generators named in names, in order.
func Resolve(factories registry.Registry[Factory], names []string, deps Deps) ([]Generator, error) {
	generators := make([]Generator, 0, len(names))
	for _, name := range names {
		factory, err := factories.Get(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfiguration, "unknown generator %q", name).
				WithDetail("generator", name).
				WithDetail("known", strings.Join(factories.List(), ", "))
		}
		g, err := factory(deps)
		if err != nil {
			return nil, err
		}
		generators = append(generators, g)
	}
	return generators, nil
}
