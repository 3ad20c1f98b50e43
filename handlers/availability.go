// File: handlers/availability.go
package handlers

import (
	"net/http"

	"mindnest/middleware"
	"mindnest/models"
	"mindnest/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the therapist-side availability management
// screens: recurring templates, generated slots and the calendar summary.
type AvailabilityHandler struct {
	Availability availability.Service
	Errors       ErrorHelper
}

// NewAvailabilityHandler returns an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, errs ErrorHelper) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc, Errors: errs}
}

// ListTemplates returns the therapist's recurring weekly rules.
func (h *AvailabilityHandler) ListTemplates(c *gin.Context) {
	s := middleware.Principal(c)
	templates, err := h.Availability.Templates(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// SaveTemplate creates or updates a recurring rule.
func (h *AvailabilityHandler) SaveTemplate(c *gin.Context) {
	s := middleware.Principal(c)

	var tpl models.TimeSlotTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	tpl.TherapistID = s.User.ID

	saved, err := h.Availability.SaveTemplate(c.Request.Context(), s.Tokens.AccessToken, tpl)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to save template")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteTemplate removes a recurring rule.
func (h *AvailabilityHandler) DeleteTemplate(c *gin.Context) {
	s := middleware.Principal(c)
	if err := h.Availability.DeleteTemplate(c.Request.Context(), s.Tokens.AccessToken, c.Param("id")); err != nil {
		h.Errors.Handle(c, err, "Failed to delete template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

// GenerateSlots materializes concrete slots from a template over a range.
func (h *AvailabilityHandler) GenerateSlots(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		TemplateID string `json:"templateId" binding:"required"`
		From       string `json:"from" binding:"required"`
		To         string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	slots, err := h.Availability.Generate(c.Request.Context(), s.Tokens.AccessToken, req.TemplateID, req.From, req.To)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to generate slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ListSlots returns the therapist's slots for a date window.
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	s := middleware.Principal(c)
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	slots, err := h.Availability.Slots(c.Request.Context(), s.Tokens.AccessToken, s.User.ID, from, to)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SetSlotStatus flips a slot between available and blocked.
func (h *AvailabilityHandler) SetSlotStatus(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		Status models.SlotStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Availability.SetSlotStatus(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"), req.Status); err != nil {
		h.Errors.Handle(c, err, "Failed to update slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot updated"})
}

// Summary returns the calendar aggregate for a window.
func (h *AvailabilityHandler) Summary(c *gin.Context) {
	s := middleware.Principal(c)
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	summary, err := h.Availability.Summary(c.Request.Context(), s.Tokens.AccessToken, s.User.ID, from, to)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load calendar summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
