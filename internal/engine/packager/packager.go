// Package packager assembles bootable images from compiled kernels.
package packager

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fixed locations inside the staging tree.
const (
	// KernelStagePath is where the compiled kernel is injected.
	KernelStagePath = "boot/kernel"
	// BootConfigTemplate is the boot configuration template inside the
	// staging template tree.
	BootConfigTemplate = "boot/grub/grub.cfg.tmpl"
	// BootConfigName is the rendered boot configuration.
	BootConfigName = "boot/grub/grub.cfg"
)

// Request describes one packaging run.
type Request struct {
	// Root is the project root; images are left there.
	Root string
	// Target is the just-built target.
	Target domain.Target
	// Artifact is the path of the relocated kernel binary.
	Artifact string
	// Product names the image files.
	Product string
	// TemplateDir is the staging template tree, relative to Root.
	TemplateDir string
	// Version is substituted into the boot configuration.
	Version string
}

// bootData is the value rendered into the boot configuration template.
type bootData struct {
	Product string
	Target  string
	Version string
}

// Packager stages a template directory, injects the kernel and version, and
// drives the external image-authoring tool. Every step failure aborts the run.
type Packager struct {
	imager ports.ImageAuthor
	logger ports.Logger
}

// New creates a Packager.
func New(imager ports.ImageAuthor, logger ports.Logger) *Packager {
	return &Packager{imager: imager, logger: logger}
}

// Package produces the two image files for a target:
// <product>-grub-<target>.iso and <product>-<target>.iso.
func (p *Packager) Package(ctx context.Context, req Request) error {
	stage := filepath.Join(req.Root, "build", "stage-"+req.Target.Name)
	image := filepath.Join(req.Root, domain.ImageName(req.Product, req.Target.Name))
	alias := filepath.Join(req.Root, domain.ImageAliasName(req.Product, req.Target.Name))

	p.logger.Info("packaging target " + req.Target.Name)

	// Stale staging output and prior images for this target go first.
	for _, path := range []string{stage, image, alias} {
		if err := os.RemoveAll(path); err != nil {
			return p.fail(err, "failed to remove stale output")
		}
	}

	templateDir := filepath.Join(req.Root, req.TemplateDir)
	if err := os.MkdirAll(stage, domain.DirPerm); err != nil {
		return p.fail(err, "failed to create staging directory")
	}
	if err := os.CopyFS(stage, os.DirFS(templateDir)); err != nil {
		return p.fail(err, "failed to stage template directory")
	}

	if err := copyFile(req.Artifact, filepath.Join(stage, KernelStagePath), domain.FilePerm); err != nil {
		return p.fail(err, "failed to inject kernel artifact")
	}

	if err := p.renderBootConfig(stage, req); err != nil {
		return err
	}

	if err := p.imager.Author(ctx, stage, image); err != nil {
		return p.fail(err, "image authoring failed")
	}

	if err := copyFile(image, alias, domain.FilePerm); err != nil {
		return p.fail(err, "failed to duplicate image")
	}

	p.logger.Info("packaged " + image + " and " + alias)
	return nil
}

// renderBootConfig renders the boot configuration template in place and
// removes the template file from the staging tree.
func (p *Packager) renderBootConfig(stage string, req Request) error {
	src := filepath.Join(stage, BootConfigTemplate)

	raw, err := os.ReadFile(src) //nolint:gosec // fixed path inside the staging tree
	if err != nil {
		return p.fail(err, "boot configuration template missing from staging tree")
	}

	tmpl, err := template.New(filepath.Base(src)).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return p.fail(err, "failed to parse boot configuration template")
	}

	var buf bytes.Buffer
	data := bootData{Product: req.Product, Target: req.Target.Name, Version: req.Version}
	if err := tmpl.Execute(&buf, data); err != nil {
		return p.fail(err, "failed to render boot configuration")
	}

	dst := filepath.Join(stage, BootConfigName)
	if err := os.WriteFile(dst, buf.Bytes(), domain.FilePerm); err != nil {
		return p.fail(err, "failed to write boot configuration")
	}
	if err := os.Remove(src); err != nil {
		return p.fail(err, "failed to remove boot configuration template")
	}
	return nil
}

func (p *Packager) fail(err error, msg string) error {
	return errors.Join(domain.ErrPackaging, zerr.Wrap(err, msg))
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // paths are orchestrator-controlled
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // ditto
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
