package ports

import "go.trai.ch/compdb/internal/core/domain"

// ConfigLoader defines the interface for loading the per-workspace defaults.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional configuration file at the workspace root.
	// A missing file is not an error and yields the zero configuration.
	Load(workspace string) (domain.ToolConfig, error)
}
