//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"scribepad/internal/api/server"
	"scribepad/internal/config"
)

// InitializeServer assembles the full API server from configuration.
func InitializeServer(cfg *config.Config) (*server.Server, error) {
	wire.Build(
		ProvideLogger,
		ProvideUserDAO,
		ProvideTokenManager,
		ProvideTranscriber,
		ProvideScratchDir,
		ProvidePool,
		ProvideSheetGenerator,
		ProvideAuthService,
		ProvideTranscriptionService,
		ProvideSheetService,
		ProvideServiceContainer,
		ProvideServerConfig,
		server.NewServer,
	)
	return nil, nil
}
