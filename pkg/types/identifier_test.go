package types_test

import (
	"testing"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIdentifierRender(t *testing.T) {
	id := types.NewIdentifier("x", "test")

	assert.Equal(t, "x:test", id.Render())
	assert.Equal(t, "x_test", id.RenderUnderscore())
	assert.Equal(t, "x:test", id.String())
	assert.Equal(t, "x", id.Namespace())
	assert.Equal(t, "test", id.Path())
}

func TestIdentifierRenderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ns := rapid.StringMatching(`[a-z0-9_.]{1,12}`).Draw(t, "namespace")
		path := rapid.StringMatching(`[a-z0-9_/]{1,24}`).Draw(t, "path")

		id := types.NewIdentifier(ns, path)
		if got := id.Render(); got != ns+":"+path {
			t.Fatalf("Render() = %q", got)
		}
		if got := id.RenderUnderscore(); got != ns+"_"+path {
			t.Fatalf("RenderUnderscore() = %q", got)
		}
		if id != types.NewIdentifier(ns, path) {
			t.Fatalf("identifiers with equal parts must be equal")
		}
	})
}

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Identifier
		wantErr bool
	}{
		{"simple", "x:test", types.NewIdentifier("x", "test"), false},
		{"path_with_colon", "x:a:b", types.NewIdentifier("x", "a:b"), false},
		{"missing_namespace_separator", "test", types.Identifier{}, true},
		{"empty_namespace", ":test", types.Identifier{}, true},
		{"empty_path", "x:", types.Identifier{}, true},
		{"slash_in_path", "x:a/b", types.Identifier{}, true},
		{"backslash_in_path", `x:a\b`, types.Identifier{}, true},
		{"parent_in_path", "x:a/../../../y", types.Identifier{}, true},
		{"dotdot_path", "x:..", types.Identifier{}, true},
		{"slash_in_namespace", "x/y:a", types.Identifier{}, true},
		{"dotdot_namespace", "..:a", types.Identifier{}, true},
		{"single_dot_allowed", "x:a.b", types.NewIdentifier("x", "a.b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseIdentifier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrData))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentifierValidate(t *testing.T) {
	assert.NoError(t, types.NewIdentifier("a", "b").Validate())
	assert.Error(t, types.NewIdentifier("", "b").Validate())
	assert.Error(t, types.NewIdentifier("a", "").Validate())

	err := types.NewIdentifier("x", "../escape").Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrData))
	assert.Equal(t, "../escape", errors.GetErrorDetails(err)["path"])
}

func TestIsPathSafe(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"woah_pack", true},
		{"a.b", true},
		{"a/b", false},
		{`a\b`, false},
		{"..", false},
		{"a..b", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, types.IsPathSafe(tt.input))
		})
	}
}

func TestIdentifierText(t *testing.T) {
	var id types.Identifier
	require.NoError(t, id.UnmarshalText([]byte("woah:ruby")))
	assert.Equal(t, types.NewIdentifier("woah", "ruby"), id)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "woah:ruby", string(text))

	assert.Error(t, id.UnmarshalText([]byte("ruby")))
}
