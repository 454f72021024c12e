// Package buildinfo persists per-target build records.
package buildinfo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.BuildInfoStore using one YAML file per target.
type Store struct{}

// NewStore creates a new build record store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build record for a target.
// Returns nil, nil if no record exists.
func (s *Store) Get(root, target string) (*domain.BuildRecord, error) {
	//nolint:gosec // path is built from the store dir and the target name
	data, err := os.ReadFile(s.filename(root, target))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var rec domain.BuildRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return &rec, nil
}

// Put stores the build record.
func (s *Store) Put(root string, rec domain.BuildRecord) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	filename := s.filename(root, rec.Target)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	//nolint:gosec // path is built from the store dir and the target name
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) filename(root, target string) string {
	return filepath.Join(root, domain.DefaultStorePath(), target+".yaml")
}
