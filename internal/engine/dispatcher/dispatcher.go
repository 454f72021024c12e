// Package dispatcher runs the per-target build loop.
package dispatcher

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/aphrodite-os/forge/internal/engine/packager"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Dispatcher drives the external toolchain once per selected target.
// Processing is strictly sequential and fail-fast: the first failing step
// aborts the whole run with no partial continuation.
type Dispatcher struct {
	toolchain ports.Toolchain
	store     ports.BuildInfoStore
	packager  *packager.Packager
	logger    ports.Logger

	// Root is the project root artifacts are relocated into.
	Root string
}

// New creates a Dispatcher rooted at the current directory.
func New(
	toolchain ports.Toolchain,
	store ports.BuildInfoStore,
	pkg *packager.Packager,
	logger ports.Logger,
) *Dispatcher {
	return &Dispatcher{
		toolchain: toolchain,
		store:     store,
		packager:  pkg,
		logger:    logger,
		Root:      ".",
	}
}

// Run executes the requested mode. Format runs once across the source tree
// and never consults the target registry. Check and compile process either
// the explicit target or every registered target in declaration order.
func (d *Dispatcher) Run(ctx context.Context, cfg *domain.Config, req domain.RunRequest) error {
	if req.Mode == domain.ModeFormat {
		return d.toolchain.Format(ctx)
	}

	registry, err := domain.NewRegistry(cfg)
	if err != nil {
		return err
	}

	targets, err := selectTargets(registry, req.Target)
	if err != nil {
		return err
	}

	policy := domain.PackagingPolicy{Enabled: cfg.PackageISO}

	for _, target := range targets {
		if err := d.dispatch(ctx, cfg, req.Mode, target, policy); err != nil {
			return zerr.Wrap(err, "target "+target.Name+" failed")
		}
	}
	return nil
}

func selectTargets(registry *domain.Registry, explicit string) ([]domain.Target, error) {
	if explicit == "" {
		return registry.All(), nil
	}
	t, err := registry.Resolve(explicit)
	if err != nil {
		return nil, err
	}
	return []domain.Target{t}, nil
}

func (d *Dispatcher) dispatch(
	ctx context.Context,
	cfg *domain.Config,
	mode domain.Mode,
	target domain.Target,
	policy domain.PackagingPolicy,
) error {
	if mode == domain.ModeCheck {
		return d.toolchain.Check(ctx, target.Platform)
	}

	produced, err := d.toolchain.Build(ctx, target.Platform)
	if err != nil {
		return err
	}

	canonical := filepath.Join(d.Root, domain.ArtifactName(target.Name))
	digest, err := relocate(produced, canonical)
	if err != nil {
		return errors.Join(domain.ErrArtifactRelocationFailed, err)
	}
	d.logger.Info("artifact " + canonical + " digest=" + digest)

	rec := domain.BuildRecord{
		Target:   target.Name,
		Platform: target.Platform,
		Artifact: canonical,
		Digest:   digest,
		Version:  cfg.Version,
		BuiltAt:  time.Now().UTC(),
	}
	if err := d.store.Put(d.Root, rec); err != nil {
		return err
	}

	if !policy.Allows(mode, target.Name) {
		return nil
	}

	return d.packager.Package(ctx, packager.Request{
		Root:        d.Root,
		Target:      target,
		Artifact:    canonical,
		Product:     cfg.Product,
		TemplateDir: cfg.TemplateDir,
		Version:     cfg.Version,
	})
}

// relocate copies the produced binary to its canonical path and returns the
// content digest of the artifact.
func relocate(src, dst string) (string, error) {
	in, err := os.Open(src) //nolint:gosec // toolchain output path
	if err != nil {
		return "", err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.ExecPerm) //nolint:gosec // canonical artifact name
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, h), in); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
