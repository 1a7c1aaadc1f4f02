package app

import (
	"log/slog"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ShowConfig   *usecase.ShowConfig
	ListNetworks *usecase.ListNetworks
	CheckConfig  *usecase.CheckConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	checkConfig *usecase.CheckConfig,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		ShowConfig:   showConfig,
		ListNetworks: listNetworks,
		CheckConfig:  checkConfig,
	}, nil
}
