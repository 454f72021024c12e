package domain

import "go.trai.ch/zerr"

var (
	// ErrCapabilityMissing is returned when flag parsing is unavailable and
	// strict mode forbids the degraded positional-only parser.
	ErrCapabilityMissing = zerr.New("flag parsing capability missing")

	// ErrUnknownFlag is returned when the command line contains a flag the
	// parser does not recognize.
	ErrUnknownFlag = zerr.New("unknown flag")

	// ErrVersionMismatch is returned when the configuration's declared version
	// differs from the orchestrator's own version.
	ErrVersionMismatch = zerr.New("configuration version does not match orchestrator version")

	// ErrUnknownTarget is returned when a target name does not resolve to a
	// platform identifier.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrNoTargets is returned when the configuration declares an empty target list.
	ErrNoTargets = zerr.New("no targets declared")

	// ErrConfigInvalid is returned when the merged configuration fails schema validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when a configuration document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration document")

	// ErrToolInvocation is returned when an external tool (compiler, checker,
	// formatter or image authoring tool) exits with a failure.
	ErrToolInvocation = zerr.New("tool invocation failed")

	// ErrArtifactMissing is returned when a compile reports success but the
	// expected artifact is not on disk.
	ErrArtifactMissing = zerr.New("artifact not found after build")

	// ErrArtifactRelocationFailed is returned when the produced artifact cannot
	// be copied to its canonical name.
	ErrArtifactRelocationFailed = zerr.New("failed to relocate artifact")

	// ErrPackaging is returned when any staging or image-authoring step fails.
	ErrPackaging = zerr.New("image packaging failed")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")
)
