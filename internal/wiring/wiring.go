// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/aphrodite-os/forge/internal/adapters/buildinfo"
	_ "github.com/aphrodite-os/forge/internal/adapters/cargo"
	_ "github.com/aphrodite-os/forge/internal/adapters/config"
	_ "github.com/aphrodite-os/forge/internal/adapters/grub"
	_ "github.com/aphrodite-os/forge/internal/adapters/logger"
	// Register app and engine nodes.
	_ "github.com/aphrodite-os/forge/internal/app"
	_ "github.com/aphrodite-os/forge/internal/engine/dispatcher"
	_ "github.com/aphrodite-os/forge/internal/engine/packager"
)
