// File: handlers/session.go
package handlers

import (
	"net/http"

	"mindnest/middleware"
	"mindnest/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes login, registration, logout and token refresh.
type SessionHandler struct {
	Manager      session.Manager
	CookieName   string
	CookieMaxAge int
	Secure       bool
}

// NewSessionHandler returns a SessionHandler.
func NewSessionHandler(manager session.Manager, cookieName string, cookieMaxAge int, secure bool) *SessionHandler {
	return &SessionHandler{Manager: manager, CookieName: cookieName, CookieMaxAge: cookieMaxAge, Secure: secure}
}

func (h *SessionHandler) setCookie(c *gin.Context, token string) {
	c.SetCookie(h.CookieName, token, h.CookieMaxAge, "/", "", h.Secure, true)
}

func (h *SessionHandler) clearCookie(c *gin.Context) {
	c.SetCookie(h.CookieName, "", -1, "/", "", h.Secure, true)
}

// Login authenticates and establishes the browser session.
func (h *SessionHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Manager.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed: " + err.Error()})
		return
	}

	h.setCookie(c, result.CookieToken)
	c.JSON(http.StatusOK, gin.H{
		"user":         result.Session.User,
		"redirectPath": result.RedirectPath,
	})
}

// Register creates an account and establishes the browser session.
func (h *SessionHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Manager.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}

	h.setCookie(c, result.CookieToken)
	c.JSON(http.StatusCreated, gin.H{
		"user":         result.Session.User,
		"redirectPath": result.RedirectPath,
	})
}

// Logout clears the session unconditionally, whatever the auth service says.
func (h *SessionHandler) Logout(c *gin.Context) {
	if s := middleware.Principal(c); s != nil {
		h.Manager.Logout(c.Request.Context(), s.ID)
	}
	h.clearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Refresh exchanges the refresh token for a new pair. Failure is fail-closed:
// the session is gone and the browser must log in again.
func (h *SessionHandler) Refresh(c *gin.Context) {
	s := middleware.Principal(c)
	if s == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !h.Manager.Refresh(c.Request.Context(), s.ID) {
		h.clearCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tokens refreshed"})
}

// Me returns the cached user record for the current session.
func (h *SessionHandler) Me(c *gin.Context) {
	s := middleware.Principal(c)
	if s == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":         s.User,
		"redirectPath": h.Manager.RedirectPath(s.User.Role),
	})
}
