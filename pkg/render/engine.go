package render

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"text/template"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/types"
)

// Template names known to the bedrock generator.
const (
	TemplateItem             = "items/item.json"
	TemplateItemTexture      = "items/item_texture.json"
	TemplateItemTextureEntry = "items/item_texture_entry.json"
	TemplateBlock            = "block/block.json"
	TemplateBlockStateArray  = "block/block_state_arr.json"
	TemplateBlockStateRange  = "block/block_state_range.json"
	TemplateBlockPermutation = "block/block_permutation.json"
	TemplateBlockTrait       = "block/block_trait.json"
	TemplateTerrainTexture   = "block/terrain_texture.json"
	TemplateAtlasEntry       = "generic/atlas.json"
	TemplateScriptModule     = "manifest/script_module.json"
	TemplateBehaviorManifest = "manifest/behavior_pack.json"
	TemplateResourceManifest = "manifest/resource_pack.json"
)

//go:embed templates
var embeddedTemplates embed.FS

// Vars is the key to string context a template is rendered with.
type Vars map[string]string

// Engine renders named templates. It is safe for concurrent use once built.
type Engine struct {
	root *template.Template
}

// New loads the embedded templates.
func New() (*Engine, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplate, "embedded templates are missing")
	}
	return NewFromFS(sub)
}

// NewFromFS loads every file in fsys as a template named by its slash path.
func NewFromFS(fsys fs.FS) (*Engine, error) {
	root := template.New("").Option("missingkey=error").Funcs(template.FuncMap{
		"quote": quote,
	})

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if _, err := root.New(path.Clean(p)).Parse(string(content)); err != nil {
			return errors.Wrapf(err, errors.ErrTemplate, "template %q does not parse", p)
		}
		return nil
	})
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrTemplate {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrTemplate, "failed to load templates")
	}

	return &Engine{root: root}, nil
}

// Has reports whether a template with the given name is loaded.
func (e *Engine) Has(name string) bool {
	return e.root.Lookup(name) != nil
}

// Names lists the loaded template names in sorted order.
func (e *Engine) Names() []string {
	var names []string
	for _, t := range e.root.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with vars. A missing template or a
// variable the template needs but vars lacks is a template error.
func (e *Engine) Render(name string, vars Vars) (string, error) {
	t := e.root.Lookup(name)
	if t == nil {
		return "", errors.Newf(errors.ErrTemplate, "template %q not found", name)
	}
	if vars == nil {
		vars = Vars{}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]string(vars)); err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplate, "failed to render template %q", name).
			WithDetail("template", name)
	}
	return buf.String(), nil
}

// quote renders s as a JSON string literal.
func quote(s string) (string, error) {
	return types.MarshalJSON(s)
}
