// Package config provides the process environment and the optional
// per-workspace configuration file.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.trai.ch/compdb/internal/core/domain"
)

// Environment holds the process environment the tool depends on, resolved
// once at startup. The core never reads environment variables itself.
type Environment struct {
	// Bazel is the bazel binary to invoke. Wrapper scripts point BAZEL_REAL
	// at the actual binary; without it the one on PATH is used.
	Bazel string

	// Workspace is the workspace root bazel announces via
	// BUILD_WORKSPACE_DIRECTORY when the tool runs under "bazel run".
	// Empty when invoked directly.
	Workspace string
}

// NewEnvironment captures the relevant environment variables. A .env file
// in the working directory is hydrated first, if present; missing files are
// ignored.
func NewEnvironment() *Environment {
	_ = godotenv.Load()

	bazel := os.Getenv(domain.BazelEnvVar)
	if bazel == "" {
		bazel = "bazel"
	}

	return &Environment{
		Bazel:     bazel,
		Workspace: os.Getenv(domain.WorkspaceEnvVar),
	}
}
