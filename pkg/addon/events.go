package addon

import (
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/registry"
)

type (
	ItemsFunc        func(r registry.ItemRegistrar) error
	ClientItemsFunc  func(r registry.ClientItemRegistrar) error
	BlocksFunc       func(r registry.BlockRegistrar) error
	ClientBlocksFunc func(r registry.ClientBlockRegistrar) error
)

// Events collects registration callbacks. Callbacks of one kind run in the
// order they were added; kinds run as items, client items, blocks, client
// blocks.
type Events struct {
	items        []ItemsFunc
	clientItems  []ClientItemsFunc
	blocks       []BlocksFunc
	clientBlocks []ClientBlocksFunc
}

func (e *Events) OnItems(fn ItemsFunc)               { e.items = append(e.items, fn) }
func (e *Events) OnClientItems(fn ClientItemsFunc)   { e.clientItems = append(e.clientItems, fn) }
func (e *Events) OnBlocks(fn BlocksFunc)             { e.blocks = append(e.blocks, fn) }
func (e *Events) OnClientBlocks(fn ClientBlocksFunc) { e.clientBlocks = append(e.clientBlocks, fn) }

// Len returns the number of subscribed callbacks.
func (e *Events) Len() int {
	return len(e.items) + len(e.clientItems) + len(e.blocks) + len(e.clientBlocks)
}

// Register runs every callback synchronously against content, stopping at
// the first error.
func (e *Events) Register(content *registry.Content) error {
	logger := logging.GetLogger("addon")
	done := logging.LogOperationStart(logger, "register")
	defer done()

	for _, fn := range e.items {
		if err := fn(content.ItemRegistrar()); err != nil {
			return err
		}
	}
	for _, fn := range e.clientItems {
		if err := fn(content.ClientItemRegistrar()); err != nil {
			return err
		}
	}
	for _, fn := range e.blocks {
		if err := fn(content.BlockRegistrar()); err != nil {
			return err
		}
	}
	for _, fn := range e.clientBlocks {
		if err := fn(content.ClientBlockRegistrar()); err != nil {
			return err
		}
	}
	return nil
}
