package models

import "time"

// Roles recognized by the platform.
const (
	RolePatient   = "user"
	RoleTherapist = "psychiatrist"
	RoleAdmin     = "admin"
)

// User is the identity record owned by the auth service. The front-end only
// caches a copy inside the browser session.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthTokens is the bearer token pair issued by the auth service.
type AuthTokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AuthResult is what the auth service returns on login, registration and refresh.
type AuthResult struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}
