package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/compdb/internal/adapters/config"
)

func TestNewEnvironment_Defaults(t *testing.T) {
	t.Setenv("BAZEL_REAL", "")
	t.Setenv("BUILD_WORKSPACE_DIRECTORY", "")

	env := config.NewEnvironment()
	assert.Equal(t, "bazel", env.Bazel)
	assert.Empty(t, env.Workspace)
}

func TestNewEnvironment_FromProcessEnvironment(t *testing.T) {
	t.Setenv("BAZEL_REAL", "/opt/bazel/bin/bazel-real")
	t.Setenv("BUILD_WORKSPACE_DIRECTORY", "/home/dev/acme")

	env := config.NewEnvironment()
	assert.Equal(t, "/opt/bazel/bin/bazel-real", env.Bazel)
	assert.Equal(t, "/home/dev/acme", env.Workspace)
}
