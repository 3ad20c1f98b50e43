// File: handlers/clients.go
package handlers

import (
	"net/http"

	"mindnest/clients"
	"mindnest/middleware"

	"github.com/gin-gonic/gin"
)

// ClientsHandler serves the therapist's client list and per-client session
// history screens.
type ClientsHandler struct {
	Therapists *clients.TherapistClient
	Errors     ErrorHelper
}

// NewClientsHandler returns a ClientsHandler.
func NewClientsHandler(therapists *clients.TherapistClient, errs ErrorHelper) *ClientsHandler {
	return &ClientsHandler{Therapists: therapists, Errors: errs}
}

// List returns the therapist's clients.
func (h *ClientsHandler) List(c *gin.Context) {
	s := middleware.Principal(c)
	items, err := h.Therapists.ListClients(c.Request.Context(), s.Tokens.AccessToken)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load clients")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Sessions returns one client's session history.
func (h *ClientsHandler) Sessions(c *gin.Context) {
	s := middleware.Principal(c)
	items, err := h.Therapists.ListSessions(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load session history")
		return
	}
	c.JSON(http.StatusOK, items)
}
