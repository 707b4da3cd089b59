// Package content loads addons declared in YAML or TOML files instead of Go
// code. A set of files becomes one addon: exactly one file declares the
// metadata, and every file may declare items and blocks.
//
//	metadata:
//	  name: my_pack
//	  version: 1.0.0
//	items:
//	  - id: my:ruby
//	    texture: textures/ruby.png
//	    components:
//	      minecraft:max_stack_size: 16
package content

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a declaration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the syntax from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrConfiguration, "unsupported declaration file %s", path).
			WithDetail("path", path)
	}
}

// Parse decodes declaration text.
func Parse(data []byte, format Format) (*File, error) {
	raw := map[string]interface{}{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrData, "invalid YAML declaration")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrData, "invalid TOML declaration")
		}
	default:
		return nil, errors.Newf(errors.ErrConfiguration, "unknown declaration format %q", format)
	}

	var f File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &f,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			conditionHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to build decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrData, "invalid declaration")
	}
	return &f, nil
}

// conditionHookFunc lets a condition be written as a bare query string.
func conditionHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(ConditionDecl{}) {
			return data, nil
		}
		if s, ok := data.(string); ok {
			return map[string]interface{}{"query": s}, nil
		}
		return data, nil
	}
}

// Loader reads declaration files through a filesystem.
type Loader struct {
	fs types.FS
}

func NewLoader(fsys types.FS) *Loader {
	return &Loader{fs: fsys}
}

// LoadFile reads and parses one declaration file.
func (l *Loader) LoadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "%s", path).WithDetail("path", path)
	}
	f.Path = path
	return f, nil
}

// Load reads every file and combines them into one addon.
func (l *Loader) Load(paths ...string) (*Declarations, error) {
	logger := logging.GetLogger("content")
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrConfiguration, "no declaration files given")
	}

	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("path", path).
			Int("items", len(f.Items)).
			Int("blocks", len(f.Blocks)).
			Msg("Loaded declaration file")
		files = append(files, f)
	}
	return NewDeclarations(l.fs, files...)
}
