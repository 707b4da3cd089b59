package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Config is the resolved build configuration.
type Config struct {
	Output     Output     `koanf:"output"`
	Content    Content    `koanf:"content"`
	Generators Generators `koanf:"generators"`
	Logging    Logging    `koanf:"logging"`

	// Dir is the project directory relative paths resolve against.
	Dir string `koanf:"-"`
	// Sources lists the config files that were loaded, in order.
	Sources []string `koanf:"-"`
}

type Output struct {
	Path         string `koanf:"path"`
	IdentityFile string `koanf:"identity_file"`
}

type Content struct {
	Files []string `koanf:"files"`
}

type Generators struct {
	Enabled []string `koanf:"enabled"`
}

type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// Validate checks the values a build cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New(errors.ErrConfiguration, "output.path must not be empty")
	}
	if c.Output.IdentityFile == "" {
		return errors.New(errors.ErrConfiguration, "output.identity_file must not be empty")
	}
	if filepath.Base(c.Output.IdentityFile) != c.Output.IdentityFile {
		return errors.Newf(errors.ErrConfiguration, "output.identity_file %q must be a file name", c.Output.IdentityFile)
	}
	if len(c.Generators.Enabled) == 0 {
		return errors.New(errors.ErrConfiguration, "generators.enabled must name at least one generator")
	}
	for _, name := range c.Generators.Enabled {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrConfiguration, "generators.enabled contains an empty name")
		}
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfiguration, "logging.verbosity %d is negative", c.Logging.Verbosity)
	}
	return nil
}

// OutputPath is the output path resolved against Dir.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Path)
}

// ContentFiles are the declaration files resolved against Dir.
func (c *Config) ContentFiles() []string {
	files := make([]string, 0, len(c.Content.Files))
	for _, f := range c.Content.Files {
		files = append(files, c.resolve(f))
	}
	return files
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}
