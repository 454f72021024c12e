// Package grub invokes the external image-authoring tool.
package grub

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// ImageAuthor implements ports.ImageAuthor by shelling out to grub-mkrescue.
type ImageAuthor struct {
	// Bin is the image-authoring executable. Overridable for tests.
	Bin string
	// Stdout and Stderr receive the tool's own output.
	Stdout io.Writer
	Stderr io.Writer

	logger ports.Logger
}

// NewImageAuthor creates an ImageAuthor using grub-mkrescue.
func NewImageAuthor(logger ports.Logger) *ImageAuthor {
	return &ImageAuthor{
		Bin:    "grub-mkrescue",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Author produces a bootable image at outPath from the staging directory.
func (a *ImageAuthor) Author(ctx context.Context, stagingDir, outPath string) error {
	a.logger.Info("authoring image " + outPath)

	cmd := exec.CommandContext(ctx, a.Bin, "-o", outPath, stagingDir) //nolint:gosec // fixed tool
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Join(zerr.With(domain.ErrToolInvocation, "command", a.Bin), err)
	}
	return nil
}
