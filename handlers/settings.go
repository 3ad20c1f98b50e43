// File: handlers/settings.go
package handlers

import (
	"net/http"

	"mindnest/clients"
	"mindnest/middleware"
	"mindnest/models"
	"mindnest/services/session"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the preferences and account screens.
type SettingsHandler struct {
	Users      *clients.UserClient
	Manager    session.Manager
	CookieName string
	Errors     ErrorHelper
}

// NewSettingsHandler returns a SettingsHandler.
func NewSettingsHandler(users *clients.UserClient, manager session.Manager, cookieName string, errs ErrorHelper) *SettingsHandler {
	return &SettingsHandler{Users: users, Manager: manager, CookieName: cookieName, Errors: errs}
}

// GetPreferences returns the user's notification and display settings.
func (h *SettingsHandler) GetPreferences(c *gin.Context) {
	s := middleware.Principal(c)
	prefs, err := h.Users.GetPreferences(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences saves edited settings.
func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	s := middleware.Principal(c)

	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Users.UpdatePreferences(c.Request.Context(), s.Tokens.AccessToken, prefs)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ResetPreferences restores the service defaults.
func (h *SettingsHandler) ResetPreferences(c *gin.Context) {
	s := middleware.Principal(c)
	prefs, err := h.Users.ResetPreferences(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to reset preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// DeleteAccount deletes the upstream account, then destroys the local session.
func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	s := middleware.Principal(c)
	if err := h.Users.DeleteAccount(c.Request.Context(), s.Tokens.AccessToken); err != nil {
		h.Errors.Handle(c, err, "Failed to delete account")
		return
	}
	h.Manager.Clear(c.Request.Context(), s.ID)
	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// ExportData streams back the user service's raw export.
func (h *SettingsHandler) ExportData(c *gin.Context) {
	s := middleware.Principal(c)
	export, err := h.Users.ExportData(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to export data")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="mindnest-export.json"`)
	c.Data(http.StatusOK, "application/json", export)
}
