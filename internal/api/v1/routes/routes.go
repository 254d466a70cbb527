package routes

import (
	"github.com/gin-gonic/gin"

	"scribepad/internal/api/middleware"
	"scribepad/internal/api/v1/handlers"
	"scribepad/internal/api/v1/services"
	"scribepad/internal/app/auth"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	AuthService          services.AuthService
	TranscriptionService services.TranscriptionService
	SheetService         services.SheetService
	Tokens               *auth.TokenManager
}

// RegisterRoutes registers the application routes. Only the home page
// requires a session; the JSON endpoints are open, matching the
// browser flow where login merely gates the UI.
func RegisterRoutes(router *gin.Engine, container *ServiceContainer) {
	authHandler := handlers.NewAuthHandler(container.AuthService, container.Tokens)
	pageHandler := handlers.NewPageHandler()
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	sheetHandler := handlers.NewSheetHandler(container.SheetService)

	router.GET("/login-page", pageHandler.LoginPage)
	router.GET("/", middleware.RequireSession(container.Tokens), pageHandler.Home)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	router.POST("/transcribe-live", transcriptionHandler.TranscribeLive)

	router.POST("/generate-practice-sheet", sheetHandler.Generate)
	router.GET("/download-practice-sheet", sheetHandler.Download)
}
