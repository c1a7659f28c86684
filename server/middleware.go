package repairshopserver

import (
	"strings"

	"github.com/gin-gonic/gin"

	identitydomain "github.com/oficinapp/repairshop-api/internal/domains/identity/domain"
	identityports "github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

const callerContextKey = "repairshop/caller"

// AuthMiddleware resolves the bearer token to an identity and stores it in
// the gin context. Requests without a valid token are rejected before any
// handler runs.
func AuthMiddleware(identity identityports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respondServiceError(c, identityports.ErrInvalidToken)
			c.Abort()
			return
		}
		caller, err := identity.Authorize(c.Request.Context(), token)
		if err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		c.Set(callerContextKey, *caller)
		c.Next()
	}
}

// CallerFromContext returns the identity the auth middleware resolved.
// The zero identity is returned on unauthenticated requests; the facade
// rejects it.
func CallerFromContext(c *gin.Context) identitydomain.Identity {
	value, ok := c.Get(callerContextKey)
	if !ok {
		return identitydomain.Identity{}
	}
	caller, ok := value.(identitydomain.Identity)
	if !ok {
		return identitydomain.Identity{}
	}
	return caller
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
