// Package fs implements filesystem access for the rewrite engine and the
// database writer.
package fs

import (
	"os"

	"go.trai.ch/compdb/internal/core/ports"
)

var _ ports.FileProber = (*Prober)(nil)

// Prober implements ports.FileProber against the real filesystem.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether path names an existing file or directory.
func (p *Prober) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
