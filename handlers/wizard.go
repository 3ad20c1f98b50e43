// File: handlers/wizard.go
package handlers

import (
	"net/http"

	"mindnest/middleware"
	"mindnest/services/wizard"

	"github.com/gin-gonic/gin"
)

// WizardHandler drives the three-step booking flow over HTTP. Each endpoint
// applies one transition and returns the full wizard state for rendering.
type WizardHandler struct {
	Wizard wizard.Service
	Errors ErrorHelper
}

// NewWizardHandler returns a WizardHandler.
func NewWizardHandler(svc wizard.Service, errs ErrorHelper) *WizardHandler {
	return &WizardHandler{Wizard: svc, Errors: errs}
}

// Start opens a wizard for one therapist with the default 30-day window.
func (h *WizardHandler) Start(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		TherapistID string `json:"therapistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Wizard.Start(c.Request.Context(), s.Tokens.AccessToken, s.User.ID, req.TherapistID)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to start booking")
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetWindow applies the date-range filter sub-widget.
func (h *WizardHandler) SetWindow(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		From string `json:"from" binding:"required"`
		To   string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Wizard.SetWindow(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"), req.From, req.To)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to update date range")
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDate advances to the time-slot step.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Wizard.SelectDate(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"), req.Date)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to select date")
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlot advances to the confirm step.
func (h *WizardHandler) SelectSlot(c *gin.Context) {
	var req struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Wizard.SelectSlot(c.Request.Context(), c.Param("id"), req.SlotID)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to select slot")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back steps exactly one state backward.
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.Wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to go back")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm submits the booking. On failure the wizard stays on the confirm
// step; the browser re-submits after the user retries.
func (h *WizardHandler) Confirm(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := h.Wizard.Confirm(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"), req.Notes)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to confirm booking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"booking": booking,
	})
}

// Cancel abandons the wizard.
func (h *WizardHandler) Cancel(c *gin.Context) {
	if err := h.Wizard.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.Errors.Handle(c, err, "Failed to cancel booking flow")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking flow cancelled"})
}
