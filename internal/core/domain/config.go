package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Well-known configuration keys.
const (
	// KeyVersion is the version the configuration declares for itself.
	KeyVersion = "CFG_VERSION"
	// KeyTargets holds the space-delimited ordered list of target names.
	KeyTargets = "TARGETS"
	// KeyProduct names the product used in image artifact names.
	KeyProduct = "PRODUCT"
	// KeyTemplateDir locates the ISO staging template tree.
	KeyTemplateDir = "ISO_TEMPLATE"
	// KeyContinueOnMismatch downgrades a version mismatch to a warning.
	KeyContinueOnMismatch = "CONTINUE_ON_MISMATCH"
	// KeyPackageISO enables bootable-image packaging after a compile.
	KeyPackageISO = "PACKAGE_ISO"
)

// DefaultProduct is the product name used when the configuration does not
// declare one.
const DefaultProduct = "aphrodite"

// DefaultTemplateDir is the ISO staging template tree used when the
// configuration does not declare one.
const DefaultTemplateDir = "isoroot"

// Config is the typed, immutable configuration of a run. It is constructed
// exactly once by the configuration loader from the merged key/value documents
// and a snapshot of the process environment; no component reads ambient
// process state after construction.
type Config struct {
	// Version is the configuration's declared version (CFG_VERSION).
	Version string
	// Targets is the ordered list of target names to process.
	Targets []string
	// Platforms maps each target name to its raw platform value, exactly as
	// found in the merged documents.
	Platforms map[string]string
	// Product names the ISO artifacts (<product>-grub-<target>.iso).
	Product string
	// TemplateDir is the ISO staging template tree.
	TemplateDir string
	// ContinueOnMismatch downgrades the version gate to a warning.
	ContinueOnMismatch bool
	// PackageISO enables image packaging for allow-listed targets.
	PackageISO bool
	// Raw is the full merged key/value mapping, kept for variable lookups in
	// later stages (e.g. boot configuration rendering).
	Raw map[string]string
}

// NewConfig validates the merged raw mapping and produces the typed Config.
// All missing or malformed keys are reported together in a single error.
func NewConfig(raw map[string]string) (*Config, error) {
	var errs error

	version := raw[KeyVersion]
	if version == "" {
		errs = errors.Join(errs, zerr.With(ErrConfigInvalid, "missing_key", KeyVersion))
	}

	targets := strings.Fields(raw[KeyTargets])
	if len(targets) == 0 {
		errs = errors.Join(errs, zerr.With(ErrNoTargets, "key", KeyTargets))
	}

	platforms := make(map[string]string, len(targets))
	for _, name := range targets {
		platforms[name] = raw[name]
	}

	if errs != nil {
		return nil, errs
	}

	product := raw[KeyProduct]
	if product == "" {
		product = DefaultProduct
	}

	templateDir := raw[KeyTemplateDir]
	if templateDir == "" {
		templateDir = DefaultTemplateDir
	}

	return &Config{
		Version:            version,
		Targets:            targets,
		Platforms:          platforms,
		Product:            product,
		TemplateDir:        templateDir,
		ContinueOnMismatch: isTruthy(raw[KeyContinueOnMismatch]),
		PackageISO:         isTruthy(raw[KeyPackageISO]),
		Raw:                raw,
	}, nil
}

// isTruthy reports whether a configuration value enables a boolean flag.
// The original documents use shell conventions, so "1", "true" and "yes"
// all count.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
