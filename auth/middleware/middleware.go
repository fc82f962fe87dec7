package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/qrvault/qrvault-backend/auth"
)

// Context keys set by the auth middleware on success.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// RequireAuth rejects requests without a valid session cookie. The decoded
// identity is attached to the gin context.
func RequireAuth(secret []byte, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			authError(c, http.StatusUnauthorized, "Token is missing. Please log in.")
			return
		}

		userID, email, err := auth.ValidateToken(tokenStr, secret)
		if err != nil {
			logger.WithError(err).Warn("token verification failed")
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				authError(c, http.StatusUnauthorized, "Token expired. Please log in again.")
			case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
				authError(c, http.StatusUnauthorized, "Invalid token. Please log in again.")
			default:
				authError(c, http.StatusUnauthorized, "Authentication error. Please log in.")
			}
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, email)
		c.Next()
	}
}

// LandingAuth guards the public landing page: anonymous callers pass
// through, authenticated ones are sent to the dashboard.
func LandingAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}
		userID, email, err := auth.ValidateToken(tokenStr, secret)
		if err != nil {
			// Stale cookie on a public page, let the landing render.
			c.Next()
			return
		}
		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, email)
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
	}
}

// authError answers 401 with an HTML page or a JSON body depending on what
// the caller accepts.
func authError(c *gin.Context, status int, message string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.HTML(status, "index.html", gin.H{"message": message, "type": "error"})
	} else {
		c.JSON(status, gin.H{"message": message, "type": "error"})
	}
	c.Abort()
}
