// Package metadata holds the package-level description of an addon: its
// name, version, author and the script modules it depends on.
package metadata

import (
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// ScriptModule is a scripting API module the behavior pack depends on,
// e.g. {"@minecraft/server", 1.11.0}.
type ScriptModule struct {
	Name    string
	Version types.SemVer
}

// Serialize renders the module's dependency entry for the behavior pack
// manifest.
func (m ScriptModule) Serialize(env render.Env) (string, error) {
	if m.Name == "" {
		return "", errors.New(errors.ErrConfiguration, "script module has an empty name")
	}
	return env.Engine.Render(render.TemplateScriptModule, render.Vars{
		"name":    m.Name,
		"version": m.Version.RenderDotted(),
	})
}

// AddonMetadata describes the package as a whole. It is installed into the
// content registry once and only read afterwards.
type AddonMetadata struct {
	Name             string
	Version          types.SemVer
	Author           string
	Description      string
	MinEngineVersion types.SemVer
	ScriptModules    []ScriptModule
}

// UsesScripts reports whether the behavior pack needs a script module entry.
func (m AddonMetadata) UsesScripts() bool {
	return len(m.ScriptModules) > 0
}

// PackageName namespaces texture paths inside the resource pack.
func (m AddonMetadata) PackageName() string {
	return m.Name
}

// Env returns the serialization context for entities of this addon.
func (m AddonMetadata) Env(engine *render.Engine) render.Env {
	return render.Env{Engine: engine, PackageName: m.PackageName()}
}

// Validate checks the fields every manifest needs.
func (m AddonMetadata) Validate() error {
	if m.Name == "" {
		return errors.New(errors.ErrConfiguration, "addon metadata has no name")
	}
	if !types.IsPathSafe(m.Name) {
		return errors.Newf(errors.ErrConfiguration, "addon name %q must not contain path separators or \"..\"", m.Name).
			WithDetail("addon", m.Name)
	}
	for i, sm := range m.ScriptModules {
		if sm.Name == "" {
			return errors.Newf(errors.ErrConfiguration, "script module %d has an empty name", i).
				WithDetail("addon", m.Name)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with m.
func (m AddonMetadata) Clone() AddonMetadata {
	if m.ScriptModules != nil {
		m.ScriptModules = append([]ScriptModule(nil), m.ScriptModules...)
	}
	return m
}
