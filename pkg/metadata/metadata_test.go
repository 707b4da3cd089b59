package metadata

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptModuleSerialize(t *testing.T) {
	engine, err := render.New()
	require.NoError(t, err)

	sm := ScriptModule{Name: "@minecraft/server", Version: types.NewBetaSemVer(1, 12, 0)}
	text, err := sm.Serialize(render.Env{Engine: engine})
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, map[string]string{"module_name": "@minecraft/server", "version": "1.12.0-beta"}, got)

	_, err = ScriptModule{}.Serialize(render.Env{Engine: engine})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
}

func TestAddonMetadata(t *testing.T) {
	md := AddonMetadata{Name: "woah_pack", Version: types.NewSemVer(1, 0, 0)}
	assert.False(t, md.UsesScripts())
	assert.Equal(t, "woah_pack", md.PackageName())
	assert.NoError(t, md.Validate())

	md.ScriptModules = []ScriptModule{{Name: "@minecraft/server", Version: types.NewSemVer(1, 11, 0)}}
	assert.True(t, md.UsesScripts())

	clone := md.Clone()
	clone.ScriptModules[0].Name = "changed"
	assert.Equal(t, "@minecraft/server", md.ScriptModules[0].Name)

	md.ScriptModules = append(md.ScriptModules, ScriptModule{})
	assert.True(t, errors.IsErrorCode(md.Validate(), errors.ErrConfiguration))
	assert.True(t, errors.IsErrorCode(AddonMetadata{}.Validate(), errors.ErrConfiguration))

	engine, err := render.New()
	require.NoError(t, err)
	assert.Equal(t, "woah_pack", md.Env(engine).PackageName)
}

func TestAddonMetadataValidateName(t *testing.T) {
	tests := []struct {
		name    string
		addon   string
		wantErr bool
	}{
		{"plain", "woah_pack", false},
		{"spaces", "My Pack", false},
		{"empty", "", true},
		{"slash", "packs/woah", true},
		{"backslash", `packs\woah`, true},
		{"parent", "../woah", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AddonMetadata{Name: tt.addon}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
		})
	}
}
