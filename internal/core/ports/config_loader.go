package ports

import "go.trai.ch/cscript/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the config file and environment overrides.
	Load() (domain.Config, error)
}
