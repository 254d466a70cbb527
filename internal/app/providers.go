package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sashabaranov/go-openai"

	"scribepad/internal/api/server"
	v1routes "scribepad/internal/api/v1/routes"
	"scribepad/internal/api/v1/services"
	"scribepad/internal/app/api"
	"scribepad/internal/app/api/whisper"
	"scribepad/internal/app/auth"
	"scribepad/internal/app/repository"
	"scribepad/internal/app/repository/pg"
	"scribepad/internal/app/repository/sqlite"
	"scribepad/internal/app/scratch"
	"scribepad/internal/app/sheet"
	"scribepad/internal/app/worker"
	"scribepad/internal/config"
)

// ProvideLogger builds the process-wide structured logger.
func ProvideLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// ProvideUserDAO selects the credential store backend by config.
func ProvideUserDAO(cfg *config.Config) (repository.UserDAO, error) {
	switch cfg.DBDriver {
	case "postgres":
		return pg.NewUserDAO(cfg.DBDSN)
	default:
		return sqlite.NewUserDAO(cfg.DBPath)
	}
}

// ProvideTokenManager builds the session token manager.
func ProvideTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
}

// ProvideTranscriber builds the external speech model client. The API
// key is required; without it transcription cannot function at all.
func ProvideTranscriber(cfg *config.Config) (api.Transcriber, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	client := openai.NewClient(cfg.OpenAIAPIKey)
	return whisper.NewRemoteTranscriber(client, cfg.WhisperModel), nil
}

// ProvideScratchDir prepares the per-call audio staging directory.
func ProvideScratchDir(cfg *config.Config) (*scratch.Dir, error) {
	return scratch.New(cfg.UploadDir)
}

// ProvidePool caps concurrent external model calls.
func ProvidePool(cfg *config.Config) *worker.Pool {
	return worker.NewPool(cfg.MaxConcurrentTranscriptions)
}

// ProvideSheetGenerator prepares the PDF generator and checks the
// dotted font asset.
func ProvideSheetGenerator(cfg *config.Config, logger *slog.Logger) (*sheet.Generator, error) {
	return sheet.NewGenerator(cfg.OutputDir, cfg.FontPath, logger)
}

// ProvideAuthService builds the auth service.
func ProvideAuthService(dao repository.UserDAO, tokens *auth.TokenManager, logger *slog.Logger) services.AuthService {
	return services.NewAuthService(dao, tokens, logger)
}

// ProvideTranscriptionService builds the transcription service.
func ProvideTranscriptionService(
	transcriber api.Transcriber,
	scratchDir *scratch.Dir,
	pool *worker.Pool,
	cfg *config.Config,
	logger *slog.Logger,
) services.TranscriptionService {
	return services.NewTranscriptionService(transcriber, scratchDir, pool, cfg.TranscribeTimeout, logger)
}

// ProvideSheetService builds the sheet service.
func ProvideSheetService(generator *sheet.Generator, logger *slog.Logger) services.SheetService {
	return services.NewSheetService(generator, logger)
}

// ProvideServiceContainer bundles the services for route registration.
func ProvideServiceContainer(
	authService services.AuthService,
	transcriptionService services.TranscriptionService,
	sheetService services.SheetService,
	tokens *auth.TokenManager,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		AuthService:          authService,
		TranscriptionService: transcriptionService,
		SheetService:         sheetService,
		Tokens:               tokens,
	}
}

// ProvideServerConfig maps application config onto the HTTP server.
func ProvideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Environment:  cfg.Environment,
	}
}
