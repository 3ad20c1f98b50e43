// File: handlers/profile.go
package handlers

import (
	"net/http"

	"mindnest/clients"
	"mindnest/middleware"
	"mindnest/models"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile screens for patients and therapists.
type ProfileHandler struct {
	Users      *clients.UserClient
	Therapists *clients.TherapistClient
	Errors     ErrorHelper
}

// NewProfileHandler returns a ProfileHandler.
func NewProfileHandler(users *clients.UserClient, therapists *clients.TherapistClient, errs ErrorHelper) *ProfileHandler {
	return &ProfileHandler{Users: users, Therapists: therapists, Errors: errs}
}

// Get returns the personal profile from the user service.
func (h *ProfileHandler) Get(c *gin.Context) {
	s := middleware.Principal(c)
	profile, err := h.Users.GetProfile(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update saves an edited personal profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	s := middleware.Principal(c)

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Users.UpdateProfile(c.Request.Context(), s.Tokens.AccessToken, profile)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetProfessional returns the therapist's professional profile.
func (h *ProfileHandler) GetProfessional(c *gin.Context) {
	s := middleware.Principal(c)
	profile, err := h.Therapists.GetOwnProfile(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load therapist profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfessional saves an edited professional profile.
func (h *ProfileHandler) UpdateProfessional(c *gin.Context) {
	s := middleware.Principal(c)

	var profile models.TherapistProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Therapists.UpdateOwnProfile(c.Request.Context(), s.Tokens.AccessToken, profile)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to update therapist profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetSpecializations replaces the therapist's specialization selection.
func (h *ProfileHandler) SetSpecializations(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		IDs []string `json:"specializationIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Therapists.SetSpecializations(c.Request.Context(), s.Tokens.AccessToken, req.IDs); err != nil {
		h.Errors.Handle(c, err, "Failed to update specializations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Specializations updated"})
}

// SetApproaches replaces the therapist's approach selection.
func (h *ProfileHandler) SetApproaches(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		IDs []string `json:"approachIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Therapists.SetApproaches(c.Request.Context(), s.Tokens.AccessToken, req.IDs); err != nil {
		h.Errors.Handle(c, err, "Failed to update approaches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approaches updated"})
}
