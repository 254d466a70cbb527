package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribepad/internal/app/auth"
)

func setupSessionRouter(t *testing.T, tokens *auth.TokenManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", RequireSession(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	return router
}

func TestRequireSession_NoCookie(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := setupSessionRouter(t, tokens)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login-page", rec.Header().Get("Location"))
}

func TestRequireSession_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := setupSessionRouter(t, tokens)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireSession_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := setupSessionRouter(t, tokens)

	token, err := tokens.Issue(1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}
