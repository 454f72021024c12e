// Package domain contains the core types of the forge orchestrator.
package domain

// Mode is the command mode of a run.
type Mode int

const (
	// ModeCompile builds every selected target and relocates the artifacts.
	ModeCompile Mode = iota
	// ModeCheck runs the toolchain in check-only mode, producing no artifacts.
	ModeCheck
	// ModeFormat runs the formatter across the source tree and ends the run.
	ModeFormat
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeFormat:
		return "format"
	default:
		return "compile"
	}
}

// ResolveMode maps the check/format flags to a Mode. Check and format are
// mutually exclusive; format wins because formatting implies a compile-ability
// check. The second return value reports whether the conflict was resolved
// that way, so the caller can warn once.
func ResolveMode(check, format bool) (Mode, bool) {
	switch {
	case format && check:
		return ModeFormat, true
	case format:
		return ModeFormat, false
	case check:
		return ModeCheck, false
	default:
		return ModeCompile, false
	}
}

// RunRequest is the parsed command line: the mode to run in and an optional
// explicit single target that short-circuits the all-targets loop.
type RunRequest struct {
	Mode   Mode
	Target string
}
