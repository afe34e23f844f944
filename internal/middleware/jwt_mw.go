package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"companion_rental/internal/model"
	"companion_rental/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthUserKey is the gin context key under which the verified identity is stored for logging.
const AuthUserKey = "authUser"

// AuthenticatedHandler is a handler that may only run with a verified identity.
type AuthenticatedHandler interface {
	ServeAuthenticated(c *gin.Context, identity model.Identity)
}

// AuthenticatedHandlerFunc adapts a plain function to AuthenticatedHandler.
type AuthenticatedHandlerFunc func(c *gin.Context, identity model.Identity)

func (f AuthenticatedHandlerFunc) ServeAuthenticated(c *gin.Context, identity model.Identity) {
	f(c, identity)
}

// Authenticator verifies bearer tokens before handing control to protected handlers.
type Authenticator struct {
	jwtUtil *utils.JWTUtil
	now     func() time.Time
	log     zerolog.Logger
}

// NewAuthenticator creates an Authenticator. now defaults to time.Now.
func NewAuthenticator(jwtUtil *utils.JWTUtil, now func() time.Time, log zerolog.Logger) *Authenticator {
	if now == nil {
		now = time.Now
	}
	return &Authenticator{jwtUtil: jwtUtil, now: now, log: log}
}

// Protect is the only way to reach h. Every rejection answers 401 and h never runs.
func (a *Authenticator) Protect(h AuthenticatedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token not given"})
			return
		}

		identity, err := a.jwtUtil.ValidateToken(tokenString, a.now())
		if err != nil {
			if errors.Is(err, utils.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			a.log.Debug().Err(err).Str("path", c.FullPath()).Msg("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthUserKey, identity.UserID)
		h.ServeAuthenticated(c, identity)
	}
}

// extractToken accepts either a bare token or "Bearer <token>".
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	if len(parts) == 1 && !strings.EqualFold(parts[0], "bearer") {
		return parts[0]
	}
	return ""
}
