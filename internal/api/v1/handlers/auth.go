package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "scribepad/internal/api/errors"
	"scribepad/internal/api/middleware"
	"scribepad/internal/api/v1/dto"
	"scribepad/internal/api/v1/services"
	"scribepad/internal/app/auth"
	"scribepad/internal/app/repository"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	service services.AuthService
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service services.AuthService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
	}
}

// Signup handles POST /signup
//
// @Summary Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup data"
// @Success 201 {object} dto.MessageResponse "User created"
// @Failure 400 {object} errors.APIError "Missing fields or username taken"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.Signup(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			middleware.HandleError(c, apierrors.NewConflictError("Username already exists."))
			return
		}
		middleware.HandleError(c, apierrors.NewInternalError("Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created successfully."})
}

// Login handles POST /login
//
// @Summary Authenticate and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login data"
// @Success 200 {object} dto.MessageResponse "Welcome message, session cookie set"
// @Failure 400 {object} errors.APIError "Missing fields"
// @Failure 401 {object} errors.APIError "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			middleware.HandleError(c, apierrors.NewUnauthorizedError("Invalid username or password."))
			return
		}
		middleware.HandleError(c, apierrors.NewInternalError("Internal server error"))
		return
	}

	middleware.SetSessionCookie(c, h.tokens, token)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Welcome, %s!", req.Username)})
}

// Logout handles GET /logout
//
// @Summary Clear the session and return to the login page
// @Tags auth
// @Success 302 {string} string "Redirect to /login-page"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login-page")
}
