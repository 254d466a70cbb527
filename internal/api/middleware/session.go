package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scribepad/internal/app/auth"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "scribepad_session"

// Context keys populated by RequireSession.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// RequireSession gates page routes behind a valid session token.
// Browsers without one are redirected to the login page.
func RequireSession(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login-page")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/login-page")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// SetSessionCookie attaches a freshly issued session token to the
// response.
func SetSessionCookie(c *gin.Context, tokens *auth.TokenManager, token string) {
	c.SetCookie(SessionCookie, token, int(tokens.TTL().Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie from the browser.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
