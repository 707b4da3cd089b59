package woah

import (
	"path/filepath"

	"github.com/arthur-debert/woah/pkg/addon"
	"github.com/arthur-debert/woah/pkg/config"
	"github.com/arthur-debert/woah/pkg/content"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/filesystem"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/ui"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		output     string
		configFile string
	)

	cmd := &cobra.Command{
		Use:     "build [files...]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			loadOpts := config.LoadOptions{ConfigFile: configFile}
			if output != "" {
				// Relative to the working directory, not the config file
				abs, err := filepath.Abs(output)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "invalid output path %s", output)
				}
				loadOpts.Overrides = map[string]interface{}{"output.path": abs}
			}

			cfg, err := config.Load(loadOpts)
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConf)
			}
			if opts.verbosity == 0 && cfg.Logging.Verbosity > 0 {
				logging.SetupLogger(cfg.Logging.Verbosity)
			}

			files := args
			if len(files) == 0 {
				files = cfg.ContentFiles()
			}

			logger.Info().
				Strs("files", files).
				Str("output", cfg.OutputPath()).
				Strs("sources", cfg.Sources).
				Msg("Starting build")

			fsys := filesystem.NewOS()
			decls, err := content.NewLoader(fsys).Load(files...)
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrBuild)
			}

			result, err := addon.Run(decls, addon.Options{
				Output:       cfg.OutputPath(),
				IdentityFile: cfg.Output.IdentityFile,
				FileSystem:   fsys,
				Generators:   cfg.Generators.Enabled,
			})
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrBuild)
			}

			return renderer.RenderSummary(ui.NewSummary(decls.Metadata().Name, result))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)

	return cmd
}
