package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellora-inc/sellora/internal/shared/constants"
	"github.com/sellora-inc/sellora/internal/shared/utils"
)

// RequireRole rejects requests whose authenticated role is not in the allowed
// set. Must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" || !allowed[role] {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSuperAdmin restricts the route to platform operators.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(constants.RoleSuperAdmin)
}
