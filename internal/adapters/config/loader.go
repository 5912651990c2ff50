package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file at the workspace
// root.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the optional compdb.yaml at the workspace root. A missing
// file yields the zero configuration; an unreadable or unparsable one is
// domain.ErrConfigInvalid.
func (l *Loader) Load(workspace string) (domain.ToolConfig, error) {
	path := filepath.Join(workspace, domain.ConfigFileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is rooted at the discovered workspace
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ToolConfig{}, nil
		}
		return domain.ToolConfig{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "cause", err.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ToolConfig{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "cause", err.Error()), "path", path)
	}

	return domain.ToolConfig{
		Flags:   file.Flags,
		Targets: file.Targets,
	}, nil
}
