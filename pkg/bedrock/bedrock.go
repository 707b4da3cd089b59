// Package bedrock is the standard generator. It writes a behavior pack under
// BP/ and a resource pack under RP/:
//
//	BP/manifest.json
//	BP/items/<ns>_<path>.json
//	BP/blocks/<ns>_<path>.json
//	RP/manifest.json
//	RP/textures/item_texture.json
//	RP/textures/items/<package>/<ns>_<path>.png
//	RP/textures/terrain_texture.json
//	RP/textures/block/<package>/<ns>_<path>.png
//
// Every JSON artifact is rendered from a template and pretty-printed before
// it is written.
package bedrock

import (
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/woah/pkg/block"
	"github.com/arthur-debert/woah/pkg/codegen"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/identity"
	"github.com/arthur-debert/woah/pkg/item"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/sprite"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/rs/zerolog"
)

// Name is the name the generator is registered under.
const Name = "bedrock"

const (
	BehaviorPackDir = "BP"
	ResourcePackDir = "RP"
)

// Generator writes the standard two-root package layout.
type Generator struct {
	fs     types.FS
	engine *render.Engine
	logger zerolog.Logger
}

// New creates a generator writing through fsys.
func New(fsys types.FS, engine *render.Engine) *Generator {
	return &Generator{
		fs:     fsys,
		engine: engine,
		logger: logging.GetLogger("bedrock"),
	}
}

// Factory adapts New to codegen.Factory. The embedded templates are loaded
// when deps carries no engine.
func Factory(deps codegen.Deps) (codegen.Generator, error) {
	if deps.FileSystem == nil {
		return nil, errors.New(errors.ErrInternal, "bedrock generator needs a filesystem")
	}
	engine := deps.Engine
	if engine == nil {
		var err error
		if engine, err = render.New(); err != nil {
			return nil, err
		}
	}
	return New(deps.FileSystem, engine), nil
}

// Register adds the bedrock factory to factories.
func Register(factories registry.Registry[codegen.Factory]) error {
	return factories.Register(Name, Factory)
}

func (g *Generator) Name() string { return Name }

// Build creates the two pack roots.
func (g *Generator) Build(out string) error {
	for _, dir := range []string{BehaviorPackDir, ResourcePackDir} {
		if err := g.mkdir(filepath.Join(out, dir)); err != nil {
			return err
		}
	}
	return nil
}

// BuildManifest writes both pack manifests.
func (g *Generator) BuildManifest(out string, md metadata.AddonMetadata, id identity.Identity) error {
	for _, dir := range []string{BehaviorPackDir, ResourcePackDir} {
		if err := g.mkdir(filepath.Join(out, dir)); err != nil {
			return err
		}
	}
	env := md.Env(g.engine)
	modules, err := render.Join(env, md.ScriptModules, ",")
	if err != nil {
		return err
	}

	common := func() render.Vars {
		return render.Vars{
			"name":               md.Name,
			"description":        md.Description,
			"author":             md.Author,
			"version":            md.Version.RenderCommas(),
			"min_engine_version": md.MinEngineVersion.RenderCommas(),
		}
	}

	bp := common()
	bp["uuid_1"] = id.BehaviorHeader.String()
	bp["uuid_2"] = id.BehaviorData.String()
	bp["uuid_3"] = id.BehaviorScript.String()
	bp["use_scripts"] = strconv.FormatBool(md.UsesScripts())
	bp["script_modules"] = modules
	if err := g.renderTo(filepath.Join(out, BehaviorPackDir, "manifest.json"), render.TemplateBehaviorManifest, bp); err != nil {
		return err
	}

	rp := common()
	rp["uuid_1"] = id.ResourceHeader.String()
	rp["uuid_2"] = id.ResourceData.String()
	return g.renderTo(filepath.Join(out, ResourcePackDir, "manifest.json"), render.TemplateResourceManifest, rp)
}

// BuildItems writes one definition file per item.
func (g *Generator) BuildItems(out string, items []item.Item, md metadata.AddonMetadata) error {
	dir := filepath.Join(out, BehaviorPackDir, "items")
	if err := g.mkdir(dir); err != nil {
		return err
	}
	env := md.Env(g.engine)
	for _, it := range items {
		if err := it.ID().Validate(); err != nil {
			return err
		}
		text, err := it.Serialize(env)
		if err != nil {
			return err
		}
		if err := g.writeJSON(filepath.Join(dir, it.ID().RenderUnderscore()+".json"), text); err != nil {
			return err
		}
	}
	return nil
}

// BuildClientItems writes item icons and the item atlas.
func (g *Generator) BuildClientItems(out string, textures []item.Texture, md metadata.AddonMetadata) error {
	root := filepath.Join(out, ResourcePackDir)
	if err := g.mkdir(filepath.Join(root, "textures", "items", md.PackageName())); err != nil {
		return err
	}
	env := md.Env(g.engine)
	for _, tex := range textures {
		if err := g.saveSprite(tex.ID(), tex.Sprite(), filepath.Join(root, filepath.FromSlash(tex.TexturePath(env.PackageName)))); err != nil {
			return err
		}
	}

	entries, err := render.Join(env, textures, ",")
	if err != nil {
		return err
	}
	return g.renderTo(filepath.Join(root, "textures", "item_texture.json"), render.TemplateItemTexture, render.Vars{
		"name":     md.Name,
		"contents": entries,
	})
}

// BuildBlocks writes one definition file per block.
func (g *Generator) BuildBlocks(out string, blocks []block.Block, md metadata.AddonMetadata) error {
	dir := filepath.Join(out, BehaviorPackDir, "blocks")
	if err := g.mkdir(dir); err != nil {
		return err
	}
	env := md.Env(g.engine)
	for _, b := range blocks {
		if err := b.ID().Validate(); err != nil {
			return err
		}
		text, err := b.Serialize(env)
		if err != nil {
			return err
		}
		if err := g.writeJSON(filepath.Join(dir, b.ID().RenderUnderscore()+".json"), text); err != nil {
			return err
		}
	}
	return nil
}

// BuildBlockTextures writes terrain textures and the terrain atlas.
func (g *Generator) BuildBlockTextures(out string, textures []block.Texture, md metadata.AddonMetadata) error {
	root := filepath.Join(out, ResourcePackDir)
	if err := g.mkdir(filepath.Join(root, "textures", "block", md.PackageName())); err != nil {
		return err
	}
	env := md.Env(g.engine)
	for _, tex := range textures {
		if err := g.saveSprite(tex.ID(), tex.Sprite(), filepath.Join(root, filepath.FromSlash(tex.TexturePath(env.PackageName)))); err != nil {
			return err
		}
	}

	entries, err := render.Join(env, textures, ",")
	if err != nil {
		return err
	}
	return g.renderTo(filepath.Join(root, "textures", "terrain_texture.json"), render.TemplateTerrainTexture, render.Vars{
		"name":    md.Name,
		"content": entries,
	})
}

func (g *Generator) mkdir(dir string) error {
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	return nil
}

func (g *Generator) renderTo(path, template string, vars render.Vars) error {
	text, err := g.engine.Render(template, vars)
	if err != nil {
		return err
	}
	return g.writeJSON(path, text)
}

func (g *Generator) writeJSON(path, text string) error {
	formatted, err := render.Format(text)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplate, "rendered %s is not valid JSON", filepath.Base(path)).
			WithDetail("path", path)
	}
	if err := g.fs.WriteFile(path, []byte(formatted), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	g.logger.Debug().Str("path", path).Msg("Wrote file")
	return nil
}

func (g *Generator) saveSprite(id types.Identifier, s *sprite.Sprite, path string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s == nil {
		return errors.Newf(errors.ErrData, "texture %s has no image", id).WithDetail("texture", id.Render())
	}
	if err := s.Save(g.fs, path); err != nil {
		return err
	}
	g.logger.Debug().Str("path", path).Msg("Wrote texture")
	return nil
}
