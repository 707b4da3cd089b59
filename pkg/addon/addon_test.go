package addon

import (
	"image"
	"testing"

	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/codegen"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/filesystem"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/sprite"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAddon struct {
	init func(e *Events)
}

func (testAddon) Metadata() metadata.AddonMetadata {
	return metadata.AddonMetadata{Name: "test_pack", Version: types.NewSemVer(1, 0, 0)}
}

func (a testAddon) Initialize(e *Events) { a.init(e) }

func TestRegisterRunsCallbacksInOrder(t *testing.T) {
	var calls []string
	a := testAddon{init: func(e *Events) {
		// Subscribed out of kind order on purpose.
		e.OnClientBlocks(func(r registry.ClientBlockRegistrar) error {
			calls = append(calls, "client-blocks")
			return nil
		})
		e.OnBlocks(func(r registry.BlockRegistrar) error {
			calls = append(calls, "blocks")
			r.Register(block.New(types.NewIdentifier("x", "b")))
			return nil
		})
		e.OnItems(func(r registry.ItemRegistrar) error {
			calls = append(calls, "items-1")
			r.Register(item.New(types.NewIdentifier("x", "first")))
			return nil
		})
		e.OnItems(func(r registry.ItemRegistrar) error {
			calls = append(calls, "items-2")
			r.Register(item.New(types.NewIdentifier("x", "second")))
			return nil
		})
		e.OnClientItems(func(r registry.ClientItemRegistrar) error {
			calls = append(calls, "client-items")
			return nil
		})
	}}

	content, err := Register(a)
	require.NoError(t, err)

	assert.Equal(t, []string{"items-1", "items-2", "client-items", "blocks", "client-blocks"}, calls)

	items := content.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].ID().Path())
	assert.Equal(t, "second", items[1].ID().Path())

	md, ok := content.Metadata()
	require.True(t, ok)
	assert.Equal(t, "test_pack", md.Name)
}

func TestRegisterStopsAtFirstError(t *testing.T) {
	blocksRan := false
	a := testAddon{init: func(e *Events) {
		e.OnItems(func(registry.ItemRegistrar) error {
			return errors.New(errors.ErrFileRead, "missing texture")
		})
		e.OnBlocks(func(registry.BlockRegistrar) error {
			blocksRan = true
			return nil
		})
	}}

	_, err := Register(a)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.False(t, blocksRan)
}

func TestRunBuildsPackage(t *testing.T) {
	fsys := filesystem.NewMemory()
	a := testAddon{init: func(e *Events) {
		e.OnItems(func(r registry.ItemRegistrar) error {
			r.Register(item.New(types.NewIdentifier("x", "ruby")))
			return nil
		})
		e.OnClientItems(func(r registry.ClientItemRegistrar) error {
			r.Register(item.NewTexture(types.NewIdentifier("x", "ruby"), sprite.FromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))))
			return nil
		})
	}}

	result, err := Run(a, Options{Output: "out", FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, []string{"bedrock"}, result.Generators)
	assert.Equal(t, registry.Counts{Items: 1, ItemTextures: 1}, result.Counts)

	for _, path := range []string{
		"out/_woah.json",
		"out/BP/manifest.json",
		"out/RP/manifest.json",
		"out/BP/items/x_ruby.json",
		"out/RP/textures/items/test_pack/x_ruby.png",
		"out/RP/textures/item_texture.json",
	} {
		_, err := fsys.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestRunUnknownGenerator(t *testing.T) {
	a := testAddon{init: func(*Events) {}}
	_, err := Run(a, Options{Output: "out", FileSystem: filesystem.NewMemory(), Generators: []string{"nope"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
}

func TestDefaultFactories(t *testing.T) {
	factories := DefaultFactories()
	assert.Equal(t, []string{"bedrock"}, factories.List())

	_, err := codegen.Resolve(factories, []string{"bedrock"}, codegen.Deps{FileSystem: filesystem.NewMemory()})
	assert.NoError(t, err)
}
