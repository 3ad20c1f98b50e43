// File: middleware/role.go
package middleware

import (
	"net/http"

	"mindnest/services/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// SessionMiddleware resolves the full session (with throttled upstream token
// verification) and stores it in the gin context. An unresolvable session
// means login, not an inline error.
func SessionMiddleware(manager session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			rejectUnauthenticated(c)
			return
		}
		s, err := manager.Resolve(c.Request.Context(), cookie)
		if err != nil {
			// Resolve fails closed; anything short of a valid session means login.
			rejectUnauthenticated(c)
			return
		}
		c.Set(principalKey, s)
		c.Next()
	}
}

// RequireRoles enforces fine-grained role access on a route group. A
// wrong-role user is sent to their own landing path rather than shown an
// error page.
func RequireRoles(manager session.Manager, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		s := Principal(c)
		if s == nil {
			rejectUnauthenticated(c)
			return
		}
		if !allowed[s.User.Role] {
			if wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, manager.RedirectPath(s.User.Role))
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// Principal returns the session stored by SessionMiddleware, or nil.
func Principal(c *gin.Context) *session.Session {
	if v, exists := c.Get(principalKey); exists {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

func rejectUnauthenticated(c *gin.Context) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, LoginPath)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}
