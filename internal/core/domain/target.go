package domain

import (
	"errors"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Target is one hardware build profile: a symbolic name and the toolchain
// platform identifier it resolves to.
type Target struct {
	// Name is the symbolic target name, e.g. "x86".
	Name string
	// Platform is the toolchain platform identifier, e.g.
	// "x86-unknown-none.json". Directory components of the raw configuration
	// value are discarded.
	Platform string
}

// Registry holds the ordered set of targets declared by the configuration.
// It is validated eagerly: every declared name must resolve to a non-empty
// platform identifier at construction time, not at first use.
type Registry struct {
	ordered []Target
	byName  map[string]Target
}

// NewRegistry builds a Registry from the configuration's target list.
// Unresolved names are collected and reported together.
func NewRegistry(cfg *Config) (*Registry, error) {
	var errs error

	r := &Registry{
		ordered: make([]Target, 0, len(cfg.Targets)),
		byName:  make(map[string]Target, len(cfg.Targets)),
	}

	for _, name := range cfg.Targets {
		raw := cfg.Platforms[name]
		if raw == "" {
			errs = errors.Join(errs, zerr.With(ErrUnknownTarget, "target", name))
			continue
		}

		t := Target{Name: name, Platform: filepath.Base(raw)}
		r.ordered = append(r.ordered, t)
		r.byName[name] = t
	}

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// All returns the targets in declaration order.
func (r *Registry) All() []Target {
	out := make([]Target, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Resolve returns the target with the given symbolic name.
func (r *Registry) Resolve(name string) (Target, error) {
	t, ok := r.byName[name]
	if !ok {
		return Target{}, zerr.With(ErrUnknownTarget, "target", name)
	}
	return t, nil
}

// Len returns the number of declared targets.
func (r *Registry) Len() int {
	return len(r.ordered)
}
