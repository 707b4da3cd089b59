package registry

import (
	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/logging"
)

// ItemRegistrar is handed to item registration callbacks.
type ItemRegistrar struct{ content *Content }

// ClientItemRegistrar is handed to item texture registration callbacks.
type ClientItemRegistrar struct{ content *Content }

// BlockRegistrar is handed to block registration callbacks.
type BlockRegistrar struct{ content *Content }

// ClientBlockRegistrar is handed to block texture registration callbacks.
type ClientBlockRegistrar struct{ content *Content }

func (c *Content) ItemRegistrar() ItemRegistrar               { return ItemRegistrar{c} }
func (c *Content) ClientItemRegistrar() ClientItemRegistrar   { return ClientItemRegistrar{c} }
func (c *Content) BlockRegistrar() BlockRegistrar             { return BlockRegistrar{c} }
func (c *Content) ClientBlockRegistrar() ClientBlockRegistrar { return ClientBlockRegistrar{c} }

func (r ItemRegistrar) Register(i item.Item) {
	logger := logging.GetLogger("registry")
	logger.Info().Str("item", i.ID().Render()).Msg("Registering item")
	r.content.RegisterItem(i)
}

func (r ClientItemRegistrar) Register(t item.Texture) {
	logger := logging.GetLogger("registry")
	logger.Info().Str("texture", t.ID().Render()).Msg("Registering item texture")
	r.content.RegisterItemTexture(t)
}

func (r BlockRegistrar) Register(b block.Block) {
	logger := logging.GetLogger("registry")
	logger.Info().Str("block", b.ID().Render()).Msg("Registering block")
	r.content.RegisterBlock(b)
}

func (r ClientBlockRegistrar) Register(t block.Texture) {
	logger := logging.GetLogger("registry")
	logger.Info().Str("texture", t.ID().Render()).Msg("Registering block texture")
	r.content.RegisterBlockTexture(t)
}
