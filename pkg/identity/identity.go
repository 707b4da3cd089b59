// Package identity persists the UUIDs that give a package a stable identity
// across rebuilds. The file is created on the first build against an output
// root and left untouched by every later build.
package identity

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/logging"
	"github.com/arthur-debert/woah/pkg/types"
	"github.com/google/uuid"
)

// DefaultFileName is the identity file written at the output root.
const DefaultFileName = "_woah.json"

// Identity holds three behavior pack and two resource pack UUIDs.
type Identity struct {
	BehaviorHeader uuid.UUID `json:"uuid1b"`
	BehaviorData   uuid.UUID `json:"uuid2b"`
	BehaviorScript uuid.UUID `json:"uuid3b"`
	ResourceHeader uuid.UUID `json:"uuid1r"`
	ResourceData   uuid.UUID `json:"uuid2r"`
}

// Generate creates an identity from five fresh random UUIDs.
func Generate() Identity {
	return Identity{
		BehaviorHeader: uuid.New(),
		BehaviorData:   uuid.New(),
		BehaviorScript: uuid.New(),
		ResourceHeader: uuid.New(),
		ResourceData:   uuid.New(),
	}
}

// Validate checks that no UUID is the nil UUID.
func (id Identity) Validate() error {
	fields := []struct {
		key   string
		value uuid.UUID
	}{
		{"uuid1b", id.BehaviorHeader},
		{"uuid2b", id.BehaviorData},
		{"uuid3b", id.BehaviorScript},
		{"uuid1r", id.ResourceHeader},
		{"uuid2r", id.ResourceData},
	}
	for _, f := range fields {
		if f.value == uuid.Nil {
			return errors.Newf(errors.ErrData, "identity field %s is missing", f.key).
				WithDetail("field", f.key)
		}
	}
	return nil
}

// Read loads and validates an identity file.
func Read(fsys types.FS, path string) (Identity, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Identity{}, errors.Wrapf(err, errors.ErrFileRead, "failed to read identity file %s", path)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return Identity{}, errors.Wrapf(err, errors.ErrData, "identity file %s is not valid", path).
			WithDetail("path", path)
	}
	if err := id.Validate(); err != nil {
		return Identity{}, errors.Wrapf(err, errors.ErrData, "identity file %s is incomplete", path).
			WithDetail("path", path)
	}
	return id, nil
}

// Write persists id at path.
func Write(fsys types.FS, path string, id Identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode identity")
	}
	data = append(data, '\n')
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write identity file %s", path)
	}
	return nil
}

// Ensure returns the identity stored at path, creating it first when the
// file does not exist. created reports whether a new identity was written.
// An existing file is never rewritten.
func Ensure(fsys types.FS, path string) (id Identity, created bool, err error) {
	logger := logging.GetLogger("identity")

	_, err = fsys.Stat(path)
	switch {
	case err == nil:
		id, err = Read(fsys, path)
		if err != nil {
			return Identity{}, false, err
		}
		logger.Debug().Str("path", path).Msg("Reusing package identity")
		return id, false, nil
	case stderrors.Is(err, fs.ErrNotExist):
		id = Generate()
		if err := Write(fsys, path, id); err != nil {
			return Identity{}, false, err
		}
		logger.Info().Str("path", path).Msg("Generated package identity")
		return id, true, nil
	default:
		return Identity{}, false, errors.Wrapf(err, errors.ErrFileRead, "failed to stat identity file %s", path)
	}
}
