package block

import (
	"fmt"

	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/sprite"
	"github.com/arthur-debert/woah/pkg/types"
)

// Texture is a terrain texture in the resource pack.
type Texture struct {
	id     types.Identifier
	sprite *sprite.Sprite
}

// NewTexture takes ownership of s.
func NewTexture(id types.Identifier, s *sprite.Sprite) Texture {
	return Texture{id: id, sprite: s}
}

func (t Texture) ID() types.Identifier   { return t.id }
func (t Texture) Sprite() *sprite.Sprite { return t.sprite }

// TexturePath is the resource pack relative path of the image.
func (t Texture) TexturePath(packageName string) string {
	return fmt.Sprintf("textures/block/%s/%s.png", packageName, t.id.RenderUnderscore())
}

// Serialize renders the texture's terrain_texture.json entry.
func (t Texture) Serialize(env render.Env) (string, error) {
	if err := t.id.Validate(); err != nil {
		return "", err
	}
	return env.Engine.Render(render.TemplateAtlasEntry, render.Vars{
		"texture_path": t.TexturePath(env.PackageName),
		"id":           t.id.Render(),
	})
}
