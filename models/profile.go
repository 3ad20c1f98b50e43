package models

import "time"

// UserProfile holds the extended personal fields of a patient account.
type UserProfile struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// TherapistProfile holds the professional fields of a psychiatrist account.
type TherapistProfile struct {
	UserID          string           `json:"userId"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Title           string           `json:"title,omitempty"`
	Bio             string           `json:"bio,omitempty"`
	LicenseNumber   string           `json:"licenseNumber,omitempty"`
	LicenseState    string           `json:"licenseState,omitempty"`
	YearsExperience int              `json:"yearsExperience,omitempty"`
	HourlyRate      float64          `json:"hourlyRate,omitempty"`
	Verified        bool             `json:"verified"`
	Specializations []Specialization `json:"specializations,omitempty"`
	Approaches      []Approach       `json:"approaches,omitempty"`
}

// Specialization is a taxonomy entry, e.g. "anxiety" or "trauma".
type Specialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Approach is a treatment approach taxonomy entry, e.g. "CBT".
type Approach struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TherapistSummary is the row shape returned by therapist search.
type TherapistSummary struct {
	UserID          string   `json:"userId"`
	FullName        string   `json:"fullName"`
	Title           string   `json:"title,omitempty"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	Verified        bool     `json:"verified"`
	Specializations []string `json:"specializations,omitempty"`
	Approaches      []string `json:"approaches,omitempty"`
	AvatarURL       string   `json:"avatarUrl,omitempty"`
}

// TherapistSearchFilters are the supported search query parameters.
type TherapistSearchFilters struct {
	Query          string  `json:"query,omitempty" form:"query"`
	Specialization string  `json:"specialization,omitempty" form:"specialization"`
	Approach       string  `json:"approach,omitempty" form:"approach"`
	MaxRate        float64 `json:"maxRate,omitempty" form:"maxRate"`
	VerifiedOnly   bool    `json:"verifiedOnly,omitempty" form:"verifiedOnly"`
	Page           int     `json:"page,omitempty" form:"page"`
	PerPage        int     `json:"perPage,omitempty" form:"perPage"`
}

// Preferences are the patient-facing notification and display settings.
type Preferences struct {
	UserID             string `json:"userId"`
	EmailReminders     bool   `json:"emailReminders"`
	SMSReminders       bool   `json:"smsReminders"`
	ReminderLeadTimeHr int    `json:"reminderLeadTimeHr"`
	Timezone           string `json:"timezone,omitempty"`
	Language           string `json:"language,omitempty"`
}

// ClientSummary is a therapist-side view of one of their clients.
type ClientSummary struct {
	UserID       string     `json:"userId"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	SessionCount int        `json:"sessionCount"`
	LastSession  *time.Time `json:"lastSession,omitempty"`
}

// TherapySession is a completed or scheduled session from the therapist's
// client history endpoint.
type TherapySession struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
}
