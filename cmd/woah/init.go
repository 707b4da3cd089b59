package woah

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/woah/pkg/config"
	"github.com/arthur-debert/woah/pkg/content"
	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/filesystem"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "init [dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			created, skipped, err := scaffoldProject(filesystem.NewOS(), dir)
			if err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrInit, dir)
			}

			for _, path := range created {
				if err := renderer.RenderMessage(fmt.Sprintf(MsgFileCreated, path)); err != nil {
					return err
				}
			}
			for _, path := range skipped {
				if err := renderer.RenderMessage(fmt.Sprintf(MsgFileSkipped, path)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// scaffoldFiles are written by init, in order.
var scaffoldFiles = []struct {
	name string
	body func() string
}{
	{config.ProjectFileNames[0], config.GenerateConfigContent},
	{content.ExampleFileName, content.ExampleDeclaration},
}

// scaffoldProject writes the project files missing from dir.
func scaffoldProject(fsys types.FS, dir string) (created, skipped []string, err error) {
	logger := logging.GetLogger("cmd.init")

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
			WithDetail("path", dir)
	}

	for _, f := range scaffoldFiles {
		path := filepath.Join(dir, f.name)
		_, statErr := fsys.Stat(path)
		switch {
		case statErr == nil:
			logger.Debug().Str("path", path).Msg("File exists, skipping")
			skipped = append(skipped, path)
			continue
		case !stderrors.Is(statErr, fs.ErrNotExist):
			return created, skipped, errors.Wrapf(statErr, errors.ErrFileRead, "failed to stat %s", path).
				WithDetail("path", path)
		}

		if err := fsys.WriteFile(path, []byte(f.body()), 0644); err != nil {
			return created, skipped, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
				WithDetail("path", path)
		}
		logger.Info().Str("path", path).Msg("Created project file")
		created = append(created, path)
	}

	return created, skipped, nil
}
