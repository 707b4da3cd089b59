// Package addon is the entry point for addon authors. An Addon provides its
// metadata and subscribes registration callbacks; Run registers everything
// into a fresh content registry and builds the package.
//
//	type myAddon struct{}
//
//	func (myAddon) Metadata() metadata.AddonMetadata {
//		return metadata.AddonMetadata{Name: "my_pack", Version: types.NewSemVer(1, 0, 0)}
//	}
//
//	func (myAddon) Initialize(e *addon.Events) {
//		e.OnItems(func(r registry.ItemRegistrar) error {
//			r.Register(item.New(types.NewIdentifier("my", "ruby")))
//			return nil
//		})
//	}
//
//	result, err := addon.Run(myAddon{}, addon.Options{Output: "build"})
package addon

import (
	"github.com/arthur-debert/woah/pkg/bedrock"
	"github.com/arthur-debert/woah/pkg/codegen"
	"github.com/arthur-debert/woah/pkg/filesystem"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/metadata"
	"github.com/arthur-debert/woah/pkg/registry"
	"github.com/arthur-debert/woah/pkg/render"
	"github.com/arthur-debert/woah/pkg/types"
)

// Addon is implemented by addon authors.
type Addon interface {
	Metadata() metadata.AddonMetadata
	Initialize(events *Events)
}

// Options configures Run. Zero values select the defaults: the OS
// filesystem, the embedded templates and the bedrock generator.
type Options struct {
	Output       string
	IdentityFile string
	FileSystem   types.FS
	Engine       *render.Engine
	// Generators names the generators to run, in order.
	Generators []string
	Factories  registry.Registry[codegen.Factory]
}

// DefaultFactories returns a factory registry holding the built-in
// generators.
func DefaultFactories() registry.Registry[codegen.Factory] {
	factories := codegen.NewFactoryRegistry()
	registry.MustRegister[codegen.Factory](factories, bedrock.Name, bedrock.Factory)
	return factories
}

// Run registers a's content and builds it.
func Run(a Addon, opts Options) (*codegen.Result, error) {
	content, err := Register(a)
	if err != nil {
		return nil, err
	}
	return Build(content, opts)
}

// Register installs a's metadata into a new content registry and runs its
// registration callbacks.
func Register(a Addon) (*registry.Content, error) {
	content := registry.NewContent()
	content.SetMetadata(a.Metadata())

	events := &Events{}
	a.Initialize(events)

	logger := logging.GetAddonLogger("addon", a.Metadata().Name)
	logger.Debug().
		Int("callbacks", events.Len()).
		Msg("Running registration callbacks")

	if err := events.Register(content); err != nil {
		return nil, err
	}
	return content, nil
}

// Build runs the generator pipeline over already registered content.
func Build(content *registry.Content, opts Options) (*codegen.Result, error) {
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Engine == nil {
		engine, err := render.New()
		if err != nil {
			return nil, err
		}
		opts.Engine = engine
	}
	if opts.Factories == nil {
		opts.Factories = DefaultFactories()
	}
	if len(opts.Generators) == 0 {
		opts.Generators = []string{bedrock.Name}
	}

	generators, err := codegen.Resolve(opts.Factories, opts.Generators, codegen.Deps{
		FileSystem: opts.FileSystem,
		Engine:     opts.Engine,
	})
	if err != nil {
		return nil, err
	}

	return codegen.NewPipeline(content, generators, codegen.Options{
		Output:       opts.Output,
		IdentityFile: opts.IdentityFile,
		FileSystem:   opts.FileSystem,
	}).Build()
}
