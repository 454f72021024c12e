// Package config loads and merges the two configuration documents.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Document names, fixed by convention at the project root.
const (
	// BuildConfName is the build configuration document.
	BuildConfName = "build.conf"
	// TargetManifestName is the target manifest document.
	TargetManifestName = "targets.conf"
)

const commentMarker = "#"

// Loader implements ports.ConfigLoader for plain-text KEY=VALUE documents
// with #-prefixed comments and ${VAR} substitution. Substitution sees the
// process environment and every key defined earlier in the merge, so
// operators can override values at invocation time. Expansion happens in
// memory; no scratch copies of the documents are written to disk.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads both documents under root, merges them in order and returns the
// validated configuration. A missing document contributes zero pairs.
func (l *Loader) Load(root string) (*domain.Config, error) {
	merged := make(map[string]string)

	for _, name := range []string{BuildConfName, TargetManifestName} {
		if err := l.mergeDocument(filepath.Join(root, name), merged); err != nil {
			return nil, err
		}
	}

	// Operator overrides from the environment win over document values.
	for _, key := range []string{domain.KeyContinueOnMismatch, domain.KeyPackageISO} {
		if v, ok := os.LookupEnv(key); ok {
			merged[key] = v
		}
	}

	cfg, err := domain.NewConfig(merged)
	if err != nil {
		return nil, err
	}

	l.Logger.Info("configuration loaded version=" + cfg.Version + " targets=" + strings.Join(cfg.Targets, ","))
	return cfg, nil
}

func (l *Loader) mergeDocument(path string, merged map[string]string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is a fixed document name under root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Warn("configuration document not found, skipping: " + path)
			return nil
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return zerr.With(zerr.With(domain.ErrConfigInvalid, "document", path), "line", line)
		}

		key = strings.TrimSpace(key)
		merged[key] = expand(strings.TrimSpace(value), merged)
	}

	return nil
}

// expand substitutes ${VAR} and $VAR references. Keys already defined by the
// merge shadow the process environment.
func expand(value string, merged map[string]string) string {
	return os.Expand(value, func(name string) string {
		if v, ok := merged[name]; ok {
			return v
		}
		return os.Getenv(name)
	})
}
