package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/adapters/fs"
)

func TestProber_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.cpp")
	require.NoError(t, os.WriteFile(file, []byte("int main() {}\n"), 0o600))

	prober := fs.NewProber()
	assert.True(t, prober.Exists(file))
	assert.True(t, prober.Exists(dir), "directories count as existing")
	assert.False(t, prober.Exists(filepath.Join(dir, "missing.cpp")))
}

func TestHasher_SumMatchesSumFile(t *testing.T) {
	content := []byte(`[{"directory": "/ws"}]`)
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	hasher := fs.NewHasher()
	fromFile, err := hasher.SumFile(path)
	require.NoError(t, err)

	assert.Equal(t, hasher.Sum(content), fromFile)
	assert.Equal(t, xxhash.Sum64(content), fromFile)
}

func TestHasher_SumFileMissing(t *testing.T) {
	_, err := fs.NewHasher().SumFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
