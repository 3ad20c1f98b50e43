// File: handlers/booking.go
package handlers

import (
	"net/http"

	"mindnest/clients"
	"mindnest/middleware"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking lifecycle actions outside the wizard:
// listing, cancellation and the therapist-side completion states.
type BookingHandler struct {
	Booking *clients.BookingClient
	Errors  ErrorHelper
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(booking *clients.BookingClient, errs ErrorHelper) *BookingHandler {
	return &BookingHandler{Booking: booking, Errors: errs}
}

// List returns the principal's bookings, optionally filtered by status.
func (h *BookingHandler) List(c *gin.Context) {
	s := middleware.Principal(c)
	bookings, err := h.Booking.ListBookings(c.Request.Context(), s.Tokens.AccessToken, c.Query("status"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Get returns one booking.
func (h *BookingHandler) Get(c *gin.Context) {
	s := middleware.Principal(c)
	booking, err := h.Booking.GetBooking(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Cancel cancels a booking with an optional reason. Whether the booking can
// still be cancelled is the booking service's call; a rejection surfaces as
// the page-local error banner.
func (h *BookingHandler) Cancel(c *gin.Context) {
	s := middleware.Principal(c)

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := h.Booking.CancelBooking(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"), req.Reason)
	if err != nil {
		h.Errors.Handle(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Complete marks a finished session. Therapist-side action.
func (h *BookingHandler) Complete(c *gin.Context) {
	s := middleware.Principal(c)
	booking, err := h.Booking.CompleteBooking(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to complete booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// NoShow marks a missed session. Therapist-side action.
func (h *BookingHandler) NoShow(c *gin.Context) {
	s := middleware.Principal(c)
	booking, err := h.Booking.MarkNoShow(c.Request.Context(), s.Tokens.AccessToken, c.Param("id"))
	if err != nil {
		h.Errors.Handle(c, err, "Failed to mark no-show")
		return
	}
	c.JSON(http.StatusOK, booking)
}
