package routes

import (
	"net/http"
	"time"

	"mindnest/config"
	"mindnest/handlers"
	"mindnest/middleware"
	"mindnest/models"
	"mindnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login/registration plus the session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", hb.Session.Login)
		auth.POST("/register", hb.Session.Register)

		// Logout and refresh need a resolved session.
		auth.Use(middleware.SessionMiddleware(hb.Manager, hb.CookieName))
		auth.POST("/logout", hb.Session.Logout)
		auth.POST("/refresh", hb.Session.Refresh)
		auth.GET("/me", hb.Session.Me)
	}
}

// RegisterPatientRoutes registers the patient dashboard, therapist search and
// the booking wizard.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	secret := []byte(config.AppConfig.SessionSecret)

	patient := r.Group("")
	patient.Use(
		middleware.EdgeGateMiddleware(hb.CookieName, secret),
		middleware.SessionMiddleware(hb.Manager, hb.CookieName),
		middleware.RequireRoles(hb.Manager, models.RolePatient),
	)
	{
		patient.GET("/dashboard/user", hb.Dashboard.Patient)

		patient.GET("/therapists", hb.Search.Browse)
		patient.GET("/therapists/:id", hb.Search.PublicProfile)

		wizard := patient.Group("/api/wizard")
		wizard.POST("", hb.Wizard.Start)
		wizard.PUT("/:id/window", hb.Wizard.SetWindow)
		wizard.PUT("/:id/date", hb.Wizard.SelectDate)
		wizard.PUT("/:id/slot", hb.Wizard.SelectSlot)
		wizard.POST("/:id/back", hb.Wizard.Back)
		wizard.POST("/:id/confirm", hb.Wizard.Confirm)
		wizard.DELETE("/:id", hb.Wizard.Cancel)
	}
}

// RegisterTherapistRoutes registers the therapist dashboard, availability
// management and client screens.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	secret := []byte(config.AppConfig.SessionSecret)

	therapist := r.Group("")
	therapist.Use(
		middleware.EdgeGateMiddleware(hb.CookieName, secret),
		middleware.SessionMiddleware(hb.Manager, hb.CookieName),
		middleware.RequireRoles(hb.Manager, models.RoleTherapist),
	)
	{
		therapist.GET("/dashboard/therapist", hb.Dashboard.Therapist)

		therapist.GET("/profile/professional", hb.Profile.GetProfessional)
		therapist.PUT("/profile/professional", hb.Profile.UpdateProfessional)
		therapist.PUT("/profile/professional/specializations", hb.Profile.SetSpecializations)
		therapist.PUT("/profile/professional/approaches", hb.Profile.SetApproaches)

		avail := therapist.Group("/api/availability")
		avail.GET("/templates", hb.Availability.ListTemplates)
		avail.POST("/templates", hb.Availability.SaveTemplate)
		avail.DELETE("/templates/:id", hb.Availability.DeleteTemplate)
		avail.POST("/slots/generate", hb.Availability.GenerateSlots)
		avail.GET("/slots", hb.Availability.ListSlots)
		avail.PUT("/slots/:id/status", hb.Availability.SetSlotStatus)
		avail.GET("/calendar", hb.Availability.Summary)

		therapist.GET("/clients", hb.Clients.List)
		therapist.GET("/clients/:id/sessions", hb.Clients.Sessions)

		therapist.POST("/api/bookings/:id/complete", hb.Booking.Complete)
		therapist.POST("/api/bookings/:id/no-show", hb.Booking.NoShow)
	}
}

// RegisterSharedRoutes registers screens available to both patients and
// therapists: personal profile, settings and booking lists.
func RegisterSharedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	secret := []byte(config.AppConfig.SessionSecret)

	shared := r.Group("")
	shared.Use(
		middleware.EdgeGateMiddleware(hb.CookieName, secret),
		middleware.SessionMiddleware(hb.Manager, hb.CookieName),
		middleware.RequireRoles(hb.Manager, models.RolePatient, models.RoleTherapist),
	)
	{
		shared.GET("/profile", hb.Profile.Get)
		shared.PUT("/profile", hb.Profile.Update)

		shared.GET("/settings/preferences", hb.Settings.GetPreferences)
		shared.PUT("/settings/preferences", hb.Settings.UpdatePreferences)
		shared.POST("/settings/preferences/reset", hb.Settings.ResetPreferences)
		shared.DELETE("/settings/account", hb.Settings.DeleteAccount)
		shared.GET("/settings/export", hb.Settings.ExportData)

		shared.GET("/api/bookings", hb.Booking.List)
		shared.GET("/api/bookings/:id", hb.Booking.Get)
		shared.POST("/api/bookings/:id/cancel", hb.Booking.Cancel)
	}
}

// RegisterAdminRoutes registers the admin overview.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	secret := []byte(config.AppConfig.SessionSecret)

	admin := r.Group("/admin")
	admin.Use(
		middleware.EdgeGateMiddleware(hb.CookieName, secret),
		middleware.SessionMiddleware(hb.Manager, hb.CookieName),
		middleware.RequireRoles(hb.Manager, models.RoleAdmin),
	)
	{
		admin.GET("", hb.Dashboard.Admin)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterSharedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
