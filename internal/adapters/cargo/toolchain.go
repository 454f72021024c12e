// Package cargo invokes the external kernel toolchain.
package cargo

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// KernelBinName is the binary name the toolchain produces for every target.
const KernelBinName = "kernel"

// Toolchain implements ports.Toolchain by shelling out to cargo.
// Invocations inherit the orchestrator's environment and block until the
// tool exits; no timeout is imposed.
type Toolchain struct {
	// Bin is the toolchain executable. Overridable for tests.
	Bin string
	// Dir is the source tree the toolchain runs in.
	Dir string
	// Stdout and Stderr receive the tool's own output.
	Stdout io.Writer
	Stderr io.Writer

	logger ports.Logger
}

// NewToolchain creates a Toolchain rooted at the current directory.
func NewToolchain(logger ports.Logger) *Toolchain {
	return &Toolchain{
		Bin:    "cargo",
		Dir:    ".",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Check runs the toolchain in check-only mode against the platform.
func (t *Toolchain) Check(ctx context.Context, platform string) error {
	t.logger.Info("checking platform " + platform)
	return t.run(ctx, "check", "--target", platform)
}

// Build runs a full release build against the platform and returns the path
// of the produced kernel binary.
func (t *Toolchain) Build(ctx context.Context, platform string) (string, error) {
	t.logger.Info("building platform " + platform)
	if err := t.run(ctx, "build", "--release", "--target", platform); err != nil {
		return "", err
	}

	artifact := t.artifactPath(platform)
	if _, err := os.Stat(artifact); err != nil {
		return "", zerr.With(domain.ErrArtifactMissing, "path", artifact)
	}
	return artifact, nil
}

// Format runs the formatter across the whole source tree.
func (t *Toolchain) Format(ctx context.Context) error {
	t.logger.Info("formatting source tree")
	return t.run(ctx, "fmt", "--all")
}

func (t *Toolchain) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, t.Bin, args...) //nolint:gosec // fixed tool, fixed arguments
	cmd.Dir = t.Dir
	cmd.Stdout = t.Stdout
	cmd.Stderr = t.Stderr

	if err := cmd.Run(); err != nil {
		cmdline := t.Bin + " " + strings.Join(args, " ")
		return errors.Join(zerr.With(domain.ErrToolInvocation, "command", cmdline), err)
	}
	return nil
}

// artifactPath is where cargo leaves the binary for a platform. A platform
// given as a custom target JSON file maps to a directory named after the file
// without its extension.
func (t *Toolchain) artifactPath(platform string) string {
	triple := strings.TrimSuffix(platform, ".json")
	return filepath.Join(t.Dir, "target", triple, "release", KernelBinName)
}
