// File: handlers/dashboard.go
package handlers

import (
	"net/http"

	"mindnest/middleware"
	"mindnest/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-scoped landing screens.
type DashboardHandler struct {
	Dashboard dashboard.Service
	Errors    ErrorHelper
}

// NewDashboardHandler returns a DashboardHandler.
func NewDashboardHandler(svc dashboard.Service, errs ErrorHelper) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc, Errors: errs}
}

// Patient returns the patient landing screen payload.
func (h *DashboardHandler) Patient(c *gin.Context) {
	s := middleware.Principal(c)
	dash, err := h.Dashboard.Patient(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Therapist returns the therapist landing screen payload.
func (h *DashboardHandler) Therapist(c *gin.Context) {
	s := middleware.Principal(c)
	dash, err := h.Dashboard.Therapist(c.Request.Context(), s.Tokens.AccessToken, s.User.ID)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Admin returns the admin overview payload.
func (h *DashboardHandler) Admin(c *gin.Context) {
	s := middleware.Principal(c)
	dash, err := h.Dashboard.Admin(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load admin overview")
		return
	}
	c.JSON(http.StatusOK, dash)
}
