// File: handlers/search.go
package handlers

import (
	"net/http"

	"mindnest/middleware"
	"mindnest/models"
	"mindnest/services/directory"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the therapist search and public profile screens.
type SearchHandler struct {
	Directory directory.Service
	Errors    ErrorHelper
}

// NewSearchHandler returns a SearchHandler.
func NewSearchHandler(dir directory.Service, errs ErrorHelper) *SearchHandler {
	return &SearchHandler{Directory: dir, Errors: errs}
}

// Browse runs a filtered search plus the taxonomy fetches for the filter UI.
func (h *SearchHandler) Browse(c *gin.Context) {
	s := middleware.Principal(c)

	var filters models.TherapistSearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
		return
	}

	result, err := h.Directory.Browse(c.Request.Context(), s.Tokens.AccessToken, filters)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to search therapists")
		return
	}
	c.JSON(http.StatusOK, result)
}

// PublicProfile returns a therapist's public profile.
func (h *SearchHandler) PublicProfile(c *gin.Context) {
	s := middleware.Principal(c)
	profile, err := h.Directory.PublicProfile(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load therapist profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
