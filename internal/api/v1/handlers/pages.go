package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scribepad/internal/api/middleware"
)

// PageHandler serves the HTML entry points.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// LoginPage handles GET /login-page, the login/signup page.
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Home handles GET /. RequireSession has already populated the
// username; unauthenticated browsers never reach this handler.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Username": c.GetString(middleware.ContextUsername),
	})
}
