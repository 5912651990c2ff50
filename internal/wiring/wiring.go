// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/compdb/internal/adapters/bazel"
	_ "go.trai.ch/compdb/internal/adapters/compiledb"
	_ "go.trai.ch/compdb/internal/adapters/config"
	_ "go.trai.ch/compdb/internal/adapters/fs"
	_ "go.trai.ch/compdb/internal/adapters/logger"
	_ "go.trai.ch/compdb/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/compdb/internal/app"
	_ "go.trai.ch/compdb/internal/engine/rewrite"
)
