package middleware

import (
	"context"
	"net/http"

	"companion_rental/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminChecker answers whether an identity currently holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, identity model.Identity) (bool, error)
}

// AdminGate restricts handlers to admins, looking the role up on every request.
type AdminGate struct {
	checker AdminChecker
	log     zerolog.Logger
}

func NewAdminGate(checker AdminChecker, log zerolog.Logger) *AdminGate {
	return &AdminGate{checker: checker, log: log}
}

// RequireAdmin wraps h so that it only runs for admins.
// A lookup failure is a 500, never a pass.
func (g *AdminGate) RequireAdmin(h AuthenticatedHandler) AuthenticatedHandler {
	return AuthenticatedHandlerFunc(func(c *gin.Context, identity model.Identity) {
		isAdmin, err := g.checker.IsAdmin(c.Request.Context(), identity)
		if err != nil {
			g.log.Error().Err(err).Str("user_id", identity.UserID).Msg("admin check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !isAdmin {
			g.log.Debug().Str("user_id", identity.UserID).Str("path", c.FullPath()).Msg("non-admin denied")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		h.ServeAuthenticated(c, identity)
	})
}
