package registry

import (
	"sync"

	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/metadata"
)

// Content is everything registered for one addon. The zero value is not
// usable; create one with NewContent and pass it explicitly to the
// registration and build phases.
type Content struct {
	mdMu        sync.RWMutex
	md          metadata.AddonMetadata
	metadataSet bool

	items         Collection[item.Item]
	itemTextures  Collection[item.Texture]
	blocks        Collection[block.Block]
	blockTextures Collection[block.Texture]
}

// NewContent creates an empty content registry.
func NewContent() *Content {
	return &Content{}
}

// SetMetadata installs the addon metadata. It is expected once per process;
// a second call replaces the first and is logged.
func (c *Content) SetMetadata(md metadata.AddonMetadata) {
	c.mdMu.Lock()
	replaced := c.metadataSet
	c.md = md.Clone()
	c.metadataSet = true
	c.mdMu.Unlock()

	logger := logging.GetLogger("registry")
	if replaced {
		logger.Warn().Str("addon", md.Name).Msg("Addon metadata replaced")
		return
	}
	logger.Debug().Str("addon", md.Name).Msg("Addon metadata set")
}

// Metadata returns a copy of the installed metadata and whether any was set.
func (c *Content) Metadata() (metadata.AddonMetadata, bool) {
	c.mdMu.RLock()
	defer c.mdMu.RUnlock()

	return c.md.Clone(), c.metadataSet
}

func (c *Content) RegisterItem(i item.Item)             { c.items.Append(i) }
func (c *Content) RegisterItemTexture(t item.Texture)   { c.itemTextures.Append(t) }
func (c *Content) RegisterBlock(b block.Block)          { c.blocks.Append(b) }
func (c *Content) RegisterBlockTexture(t block.Texture) { c.blockTextures.Append(t) }
func (c *Content) Items() []item.Item                   { return c.items.Snapshot() }
func (c *Content) ItemTextures() []item.Texture         { return c.itemTextures.Snapshot() }
func (c *Content) Blocks() []block.Block                { return c.blocks.Snapshot() }
func (c *Content) BlockTextures() []block.Texture       { return c.blockTextures.Snapshot() }

// Counts reports how many entities of each kind are registered.
func (c *Content) Counts() Counts {
	return Counts{
		Items:         c.items.Len(),
		ItemTextures:  c.itemTextures.Len(),
		Blocks:        c.blocks.Len(),
		BlockTextures: c.blockTextures.Len(),
	}
}

// Counts is a per-kind tally of registered entities.
type Counts struct {
	Items         int
	ItemTextures  int
	Blocks        int
	BlockTextures int
}

// Total is the number of registered entities of every kind.
func (c Counts) Total() int {
	return c.Items + c.ItemTextures + c.Blocks + c.BlockTextures
}
