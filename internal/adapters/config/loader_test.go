package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/adapters/config"
	"go.trai.ch/compdb/internal/adapters/logger"
	"go.trai.ch/compdb/internal/core/domain"
)

func newLoader() *config.Loader {
	log := logger.New()
	log.SetOutput(io.Discard)
	return config.NewLoader(log)
}

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := newLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Flags)
	assert.Empty(t, cfg.Targets)
}

func TestLoad_ReadsFlagsAndTargets(t *testing.T) {
	workspace := t.TempDir()
	content := `
flags:
  - "--config=remote"
targets:
  - "//lib/..."
  - "-//lib/vendor/..."
`
	err := os.WriteFile(filepath.Join(workspace, domain.ConfigFileName), []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := newLoader().Load(workspace)
	require.NoError(t, err)
	assert.Equal(t, []string{"--config=remote"}, cfg.Flags)
	assert.Equal(t, []string{"//lib/...", "-//lib/vendor/..."}, cfg.Targets)
}

func TestLoad_UnparsableFileIsInvalid(t *testing.T) {
	workspace := t.TempDir()
	err := os.WriteFile(filepath.Join(workspace, domain.ConfigFileName), []byte("flags: {not: [valid"), 0o600)
	require.NoError(t, err)

	_, err = newLoader().Load(workspace)
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
}
