package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, `# path = "build"`)
	assert.Contains(t, content, `# enabled = ["bedrock"]`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}

	// Everything is commented out, so no value survives parsing.
	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()))
	assert.False(t, k.Exists("output.path"))
	assert.False(t, k.Exists("generators.enabled"))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "output.path", envKey("WOAH_OUTPUT_PATH"))
	assert.Equal(t, "output.identity_file", envKey("WOAH_OUTPUT_IDENTITY_FILE"))
	assert.Equal(t, "logging.verbosity", envKey("WOAH_LOGGING_VERBOSITY"))
}
