// File: handlers/bundle.go
package handlers

import "mindnest/services/session"

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	Manager    session.Manager
	CookieName string

	Session      *SessionHandler
	Profile      *ProfileHandler
	Settings     *SettingsHandler
	Search       *SearchHandler
	Availability *AvailabilityHandler
	Wizard       *WizardHandler
	Booking      *BookingHandler
	Dashboard    *DashboardHandler
	Clients      *ClientsHandler
}
