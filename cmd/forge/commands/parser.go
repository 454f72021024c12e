package commands

import (
	"strings"

	"github.com/aphrodite-os/forge/internal/core/domain"
)

// Environment variables controlling the flag-parsing capability.
const (
	// EnvNoFlags disables flag interpretation, forcing the degraded
	// positional-only parser.
	EnvNoFlags = "FORGE_NO_FLAGS"
	// EnvStrictFlags turns a missing flag-parsing capability into a hard
	// failure instead of the degraded parser.
	EnvStrictFlags = "FORGE_STRICT_FLAGS"
)

// Capability is the result of the flag-parsing capability probe.
type Capability int

const (
	// CapabilityFull means flags are interpreted normally.
	CapabilityFull Capability = iota
	// CapabilityDegraded means flags are ignored and only a positional
	// target argument is honored.
	CapabilityDegraded
)

// ProbeFlagCapability decides how the command line will be parsed.
func ProbeFlagCapability(getenv func(string) string) (Capability, error) {
	if getenv(EnvNoFlags) == "" {
		return CapabilityFull, nil
	}
	if getenv(EnvStrictFlags) != "" {
		return CapabilityFull, domain.ErrCapabilityMissing
	}
	return CapabilityDegraded, nil
}

// ParsePositional is the degraded parser: flag-looking arguments are ignored
// entirely (check and format stay false) and the first remaining argument is
// the explicit target.
func ParsePositional(args []string) domain.RunRequest {
	req := domain.RunRequest{Mode: domain.ModeCompile}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		req.Target = arg
		break
	}
	return req
}
