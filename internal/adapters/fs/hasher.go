package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher implements ports.FileHasher using XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Sum computes the XXHash of an in-memory byte slice.
func (h *Hasher) Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumFile computes the XXHash of a file's content.
func (h *Hasher) SumFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
