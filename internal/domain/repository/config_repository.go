package repository

import (
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// LoadEnvDefaults reads BUDGET_* defaults from the process environment and an optional .env file.
	LoadEnvDefaults(envFile string) (*types.Config, error)
}
