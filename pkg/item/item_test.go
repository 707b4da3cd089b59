package item

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) render.Env {
	t.Helper()
	engine, err := render.New()
	require.NoError(t, err)
	return render.Env{Engine: engine, PackageName: "woah_pack"}
}

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	formatted, err := render.Format(text)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(formatted), &out))
	return out
}

func TestItemSerialize(t *testing.T) {
	it := New(types.NewIdentifier("x", "test"),
		types.NewComponent("minecraft:damage", map[string]any{"value": 7}),
	)

	text, err := it.Serialize(testEnv(t))
	require.NoError(t, err)

	doc := decode(t, text)
	assert.Equal(t, "1.21.80", doc["format_version"])

	body := doc["minecraft:item"].(map[string]any)
	assert.Equal(t, "x:test", body["description"].(map[string]any)["identifier"])

	damage := body["components"].(map[string]any)["minecraft:damage"].(map[string]any)
	assert.Equal(t, float64(7), damage["value"])
}

func TestItemWithFormatVersionCopies(t *testing.T) {
	base := New(types.NewIdentifier("x", "test"))
	derived := base.WithFormatVersion(types.NewSemVer(1, 20, 0))

	assert.Equal(t, types.Latest(), base.FormatVersion())
	assert.Equal(t, types.NewSemVer(1, 20, 0), derived.FormatVersion())
	assert.Equal(t, base.ID(), derived.ID())

	text, err := derived.Serialize(testEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "1.20.0", decode(t, text)["format_version"])
}

func TestItemComponentsAreCopies(t *testing.T) {
	it := New(types.NewIdentifier("x", "test"), types.NewComponent("a", 1))
	c := it.Components()
	c["a"] = 2
	c["b"] = 3

	assert.Equal(t, map[string]any{"a": 1}, it.Components())
}

func TestItemSerializeErrors(t *testing.T) {
	env := testEnv(t)

	_, err := New(types.NewIdentifier("", "test")).Serialize(env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrData))

	_, err = New(types.NewIdentifier("x", "test"), types.NewComponent("", 1)).Serialize(env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrData))
}

func TestTextureSerialize(t *testing.T) {
	tex := NewTexture(types.NewIdentifier("x", "ruby"), nil)

	assert.Equal(t, "textures/items/woah_pack/x_ruby.png", tex.TexturePath("woah_pack"))

	text, err := tex.Serialize(testEnv(t))
	require.NoError(t, err)

	doc := decode(t, "{"+text+"}")
	entry := doc["x:ruby"].(map[string]any)
	assert.Equal(t, "textures/items/woah_pack/x_ruby.png", entry["textures"])
}
