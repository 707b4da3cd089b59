package codegen

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/identity"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/types"
)

// Options configures a build.
type Options struct {
	// Output is the package root; BP/ and RP/ are created under it.
	Output string
	// IdentityFile is the identity file name relative to Output.
	IdentityFile string
	FileSystem   types.FS
}

// Result describes a completed build.
type Result struct {
	Output          string
	Generators      []string
	Counts          registry.Counts
	Identity        identity.Identity
	IdentityCreated bool
	Duration        time.Duration
}

// Pipeline builds the content of one registry with an ordered list of
// generators.
type Pipeline struct {
	content    *registry.Content
	generators []Generator
	opts       Options
}

// NewPipeline creates a pipeline. Generators run in the given order within
// every phase.
func NewPipeline(content *registry.Content, generators []Generator, opts Options) *Pipeline {
	if opts.IdentityFile == "" {
		opts.IdentityFile = identity.DefaultFileName
	}
	return &Pipeline{
		content:    content,
		generators: append([]Generator(nil), generators...),
		opts:       opts,
	}
}

// Build runs every phase once.
func (p *Pipeline) Build() (*Result, error) {
	start := time.Now()
	out := p.opts.Output

	md, ok := p.content.Metadata()
	if !ok {
		return nil, errors.New(errors.ErrConfiguration, "addon metadata was never set")
	}
	logger := logging.GetAddonLogger("codegen", md.Name)
	if err := md.Validate(); err != nil {
		return nil, err
	}
	if out == "" {
		return nil, errors.New(errors.ErrConfiguration, "no output directory configured")
	}
	if p.opts.FileSystem == nil {
		return nil, errors.New(errors.ErrInternal, "pipeline has no filesystem")
	}

	result := &Result{Output: out}
	for _, g := range p.generators {
		result.Generators = append(result.Generators, g.Name())
	}

	logger.Info().
		Str("output", out).
		Strs("generators", result.Generators).
		Msg("Starting build")

	// Step 1: scaffold
	if err := p.opts.FileSystem.MkdirAll(out, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", out)
	}
	if err := p.each("build", func(g Generator) error { return g.Build(out) }); err != nil {
		return nil, err
	}

	// Step 2: identity
	id, created, err := identity.Ensure(p.opts.FileSystem, filepath.Join(out, p.opts.IdentityFile))
	if err != nil {
		return nil, err
	}
	result.Identity = id
	result.IdentityCreated = created

	// Step 3: manifests
	if err := p.each("manifest", func(g Generator) error { return g.BuildManifest(out, md, id) }); err != nil {
		return nil, err
	}

	// Step 4: items, then their textures
	items := p.content.Items()
	itemTextures := p.content.ItemTextures()
	err = p.each("items", func(g Generator) error {
		if err := g.BuildItems(out, items, md); err != nil {
			return err
		}
		return g.BuildClientItems(out, itemTextures, md)
	})
	if err != nil {
		return nil, err
	}

	// Step 5: blocks, then their textures
	blocks := p.content.Blocks()
	blockTextures := p.content.BlockTextures()
	err = p.each("blocks", func(g Generator) error {
		if err := g.BuildBlocks(out, blocks, md); err != nil {
			return err
		}
		return g.BuildBlockTextures(out, blockTextures, md)
	})
	if err != nil {
		return nil, err
	}

	result.Counts = registry.Counts{
		Items:         len(items),
		ItemTextures:  len(itemTextures),
		Blocks:        len(blocks),
		BlockTextures: len(blockTextures),
	}
	result.Duration = time.Since(start)

	logger.Info().
		Int("items", result.Counts.Items).
		Int("blocks", result.Counts.Blocks).
		Bool("identityCreated", created).
		Dur("duration", result.Duration).
		Msg("Build completed")

	return result, nil
}

// each runs fn for every generator, stopping at the first error.
func (p *Pipeline) each(phase string, fn func(Generator) error) error {
	logger := logging.GetLogger("codegen")
	done := logging.LogOperationStart(logger, phase)
	defer done()

	for _, g := range p.generators {
		if err := fn(g); err != nil {
			logger.Error().Err(err).Str("phase", phase).Str("generator", g.Name()).Msg("Build phase failed")
			return err
		}
	}
	return nil
}
