package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: WOAH_OUTPUT_PATH sets output.path.
const EnvPrefix = "WOAH_"

// ProjectFileNames are looked up in the project directory, first match wins.
var ProjectFileNames = []string{"woah.toml", ".woah.toml"}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ProjectDir is searched for ProjectFileNames. Defaults to ".".
	ProjectDir string
	// ConfigFile replaces the project lookup. It must exist.
	ConfigFile string
	// UserConfigDir defaults to the XDG config home.
	UserConfigDir string
	// Overrides are applied last, keyed by dotted path ("output.path").
	Overrides map[string]interface{}
}

// LoadConfiguration loads configuration for the current directory.
func LoadConfiguration() (*Config, error) {
	return Load(LoadOptions{})
}

// Load layers every configuration source and decodes the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}
	if opts.UserConfigDir == "" {
		opts.UserConfigDir = xdg.ConfigHome
	}

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config
	if opts.UserConfigDir != "" {
		userPath := filepath.Join(opts.UserConfigDir, "woah", "config.toml")
		loaded, err := loadFileIfExists(k, userPath)
		if err != nil {
			return nil, err
		}
		if loaded {
			sources = append(sources, userPath)
		}
	}

	// 3. Project config
	configDir := opts.ProjectDir
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ConfigFile)
		configDir = filepath.Dir(opts.ConfigFile)
	} else {
		for _, name := range ProjectFileNames {
			path := filepath.Join(opts.ProjectDir, name)
			loaded, err := loadFileIfExists(k, path)
			if err != nil {
				return nil, err
			}
			if loaded {
				sources = append(sources, path)
				break
			}
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Dir = configDir
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Str("output", cfg.Output.Path).
		Strs("generators", cfg.Generators.Enabled).
		Msg("Configuration loaded")

	return cfg, nil
}

// envKey maps WOAH_OUTPUT_IDENTITY_FILE to output.identity_file. Only the
// first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func loadFileIfExists(k *koanf.Koanf, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}
	return true, loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfiguration, "failed to decode configuration")
	}
	return &cfg, nil
}

// trimSliceHookFunc trims whitespace left by "a, b" style environment lists.
func trimSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	}
}
