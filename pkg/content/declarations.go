package content

import (
	"github.com/arthur-debert/woah/pkg/addon"
	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/sprite"
	"github.com/arthur-debert/woah/pkg/types"
)

type texture struct {
	id   types.Identifier
	path string
}

// Declarations is an addon assembled from declaration files. It implements
// addon.Addon.
type Declarations struct {
	fs            types.FS
	metadata      metadata.AddonMetadata
	items         []item.Item
	itemTextures  []texture
	blocks        []block.Block
	blockTextures []texture
}

var _ addon.Addon = (*Declarations)(nil)

// NewDeclarations converts parsed files into an addon. Entities keep file
// order, then declaration order within each file.
func NewDeclarations(fsys types.FS, files ...*File) (*Declarations, error) {
	d := &Declarations{fs: fsys}
	var mdSource string

	for _, f := range files {
		if f.Metadata != nil {
			if mdSource != "" {
				return nil, errors.Newf(errors.ErrConfiguration, "metadata declared in both %s and %s", mdSource, f.Path)
			}
			mdSource = f.Path
			if mdSource == "" {
				mdSource = "<unnamed>"
			}
			d.metadata = f.Metadata.toMetadata()
		}

		for _, decl := range f.Items {
			it, err := decl.toItem()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrData, "%s", f.Path)
			}
			d.items = append(d.items, it)
			if decl.Texture != "" {
				d.itemTextures = append(d.itemTextures, texture{id: decl.ID, path: f.texturePath(decl.Texture)})
			}
		}

		for _, decl := range f.Blocks {
			b, err := decl.toBlock()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrData, "%s", f.Path)
			}
			d.blocks = append(d.blocks, b)
			if decl.Texture != "" {
				d.blockTextures = append(d.blockTextures, texture{id: decl.ID, path: f.texturePath(decl.Texture)})
			}
		}
	}

	if mdSource == "" {
		return nil, errors.New(errors.ErrConfiguration, "no declaration file declares metadata")
	}
	if err := d.metadata.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Declarations) Metadata() metadata.AddonMetadata { return d.metadata.Clone() }

// Initialize subscribes one callback per entity kind. Texture images are
// read when the callbacks run, so a missing image fails registration.
func (d *Declarations) Initialize(e *addon.Events) {
	e.OnItems(func(r registry.ItemRegistrar) error {
		for _, it := range d.items {
			r.Register(it)
		}
		return nil
	})
	e.OnClientItems(func(r registry.ClientItemRegistrar) error {
		for _, tex := range d.itemTextures {
			s, err := sprite.Read(d.fs, tex.path)
			if err != nil {
				return err
			}
			r.Register(item.NewTexture(tex.id, s))
		}
		return nil
	})
	e.OnBlocks(func(r registry.BlockRegistrar) error {
		for _, b := range d.blocks {
			r.Register(b)
		}
		return nil
	})
	e.OnClientBlocks(func(r registry.ClientBlockRegistrar) error {
		for _, tex := range d.blockTextures {
			s, err := sprite.Read(d.fs, tex.path)
			if err != nil {
				return err
			}
			r.Register(block.NewTexture(tex.id, s))
		}
		return nil
	})
}
