// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dpms/internal/adapters/config"
	_ "go.trai.ch/dpms/internal/adapters/fs"
	_ "go.trai.ch/dpms/internal/adapters/index"
	_ "go.trai.ch/dpms/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/dpms/internal/app"
)
