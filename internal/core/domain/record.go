package domain

import "time"

// BuildRecord describes one successful compile of one target. Records are
// persisted by the build info store after artifact relocation.
type BuildRecord struct {
	Target   string    `yaml:"target"`
	Platform string    `yaml:"platform"`
	Artifact string    `yaml:"artifact"`
	Digest   string    `yaml:"digest"`
	Version  string    `yaml:"version"`
	BuiltAt  time.Time `yaml:"builtAt"`
}

// File and directory permissions used across the orchestrator.
const (
	// DirPerm is the permission for created directories.
	DirPerm = 0o750
	// FilePerm is the permission for created files.
	FilePerm = 0o600
	// ExecPerm is the permission for relocated executable artifacts.
	ExecPerm = 0o755
)

// DefaultStorePath is the directory build records are stored under, relative
// to the project root.
func DefaultStorePath() string {
	return ".forge/builds"
}
