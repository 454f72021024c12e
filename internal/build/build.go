// Package build holds build-time information.
package build

// Version is the orchestrator's own version. The active configuration must
// declare the same version (CFG_VERSION) before any target work is done.
// It can be overwritten by linker flags.
var Version = "1.0.0"

// Commit is the git commit the binary was built from.
var Commit = "unknown"

// Date is the build date of the binary.
var Date = "unknown"
