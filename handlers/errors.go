// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"mindnest/clients"
	"mindnest/middleware"
	"mindnest/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHelper centralizes the per-screen failure policy: an upstream 401 is
// fatal for the session (clear it, back to login); everything else surfaces
// as a page-local error the user can retry.
type ErrorHelper struct {
	Manager    session.Manager
	CookieName string
}

// Handle maps err to a response. The fallback message covers non-API errors
// so internals never leak to the browser.
func (h ErrorHelper) Handle(c *gin.Context, err error, fallback string) {
	logger := getLogger(c)

	if clients.IsUnauthorized(err) {
		if s := middleware.Principal(c); s != nil {
			h.Manager.Clear(c.Request.Context(), s.ID)
		}
		c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
		if strings.Contains(c.GetHeader("Accept"), "text/html") {
			c.Redirect(http.StatusSeeOther, middleware.LoginPath)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return
	}

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		logger.Warn("Upstream call rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message, "details": apiErr.Errors})
		return
	}

	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
