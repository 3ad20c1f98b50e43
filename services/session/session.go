// File: services/session/session.go
package session

import (
	"context"
	"errors"
	"time"

	"mindnest/models"
	"mindnest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotAuthenticated is returned when no valid session can be resolved from
// a cookie value. Callers redirect to login.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session mirrors what the legacy client kept in session storage: the cached
// user record, the upstream token pair and the verification throttle marker.
type Session struct {
	ID             string            `json:"id"`
	User           models.User       `json:"user"`
	Tokens         models.AuthTokens `json:"tokens"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastVerifiedAt time.Time         `json:"lastVerifiedAt"`
}

// LoginResult is what handlers need to finish a login or registration:
// the session, the role's landing path and the cookie token to set.
type LoginResult struct {
	Session      *Session
	RedirectPath string
	CookieToken  string
}

// AuthAPI is the slice of the auth service the manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, email, password, role string) (*models.AuthResult, error)
	Logout(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// Manager is the single source of truth for "who is logged in" and the
// routing destination by role.
type Manager interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password, role string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string)
	Refresh(ctx context.Context, sessionID string) bool
	Resolve(ctx context.Context, cookieValue string) (*Session, error)
	Clear(ctx context.Context, sessionID string)
	RedirectPath(role string) string
}

// DefaultManager implements Manager on top of the auth service and a session
// store. It is constructed explicitly and passed to handlers; there is no
// ambient auth state.
type DefaultManager struct {
	Auth         AuthAPI
	Store        Store
	CookieSecret []byte
	CookieMaxAge time.Duration
	Logger       *zap.Logger
	Now          func() time.Time
}

func (m *DefaultManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// RedirectPath resolves the landing path for a role. Unknown roles fall back
// to the patient dashboard with a logged warning.
func (m *DefaultManager) RedirectPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleTherapist:
		return "/dashboard/therapist"
	case models.RolePatient:
		return "/dashboard/user"
	default:
		m.Logger.Warn("Unknown role, using default landing path", zap.String("role", role))
		return "/dashboard/user"
	}
}

// Login authenticates against the auth service and persists a new session.
func (m *DefaultManager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result, err := m.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, result)
}

// Register creates the account and persists a new session, mirroring Login.
func (m *DefaultManager) Register(ctx context.Context, email, password, role string) (*LoginResult, error) {
	result, err := m.Auth.Register(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, result)
}

func (m *DefaultManager) establish(ctx context.Context, result *models.AuthResult) (*LoginResult, error) {
	now := m.now()
	s := Session{
		ID:             uuid.New().String(),
		User:           result.User,
		Tokens:         result.Tokens,
		CreatedAt:      now,
		LastVerifiedAt: now, // the auth service just vouched for these tokens
	}
	if err := m.Store.Save(ctx, s); err != nil {
		return nil, err
	}
	cookieToken, err := MintCookieToken(m.CookieSecret, s.ID, s.User.Role, m.CookieMaxAge)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Session:      &s,
		RedirectPath: m.RedirectPath(s.User.Role),
		CookieToken:  cookieToken,
	}, nil
}

// Logout notifies the auth service best-effort, then unconditionally clears
// the session regardless of the network outcome.
func (m *DefaultManager) Logout(ctx context.Context, sessionID string) {
	if s, err := m.Store.Get(ctx, sessionID); err == nil {
		if err := m.Auth.Logout(ctx, s.Tokens.AccessToken); err != nil {
			m.Logger.Warn("Auth service logout failed, clearing session anyway", zap.Error(err))
		}
	}
	m.Clear(ctx, sessionID)
}

// Refresh exchanges the refresh token for a new pair. Any failure clears the
// session (fail-closed) and reports false.
func (m *DefaultManager) Refresh(ctx context.Context, sessionID string) bool {
	s, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return false
	}
	result, err := m.Auth.Refresh(ctx, s.Tokens.RefreshToken)
	if err != nil {
		m.Logger.Warn("Token refresh failed, clearing session", zap.Error(err))
		m.Clear(ctx, sessionID)
		return false
	}
	s.User = result.User
	s.Tokens = result.Tokens
	s.LastVerifiedAt = m.now()
	if err := m.Store.Save(ctx, *s); err != nil {
		m.Clear(ctx, sessionID)
		return false
	}
	return true
}

// Resolve validates the cookie, loads the session and opportunistically
// verifies the access token. Verification is throttled to once per
// utils.VerifyInterval of wall-clock time; the marker lives on the session
// record so the throttle holds across instances and restarts.
func (m *DefaultManager) Resolve(ctx context.Context, cookieValue string) (*Session, error) {
	sessionID, _, err := ParseCookieToken(m.CookieSecret, cookieValue)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	s, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	if m.now().Sub(s.LastVerifiedAt) < utils.VerifyInterval {
		return s, nil
	}

	verified, err := m.Auth.VerifyToken(ctx, s.Tokens.AccessToken)
	if err != nil {
		// One refresh attempt, then fail closed.
		if !m.Refresh(ctx, sessionID) {
			m.Clear(ctx, sessionID)
			return nil, ErrNotAuthenticated
		}
		refreshed, err := m.Store.Get(ctx, sessionID)
		if err != nil {
			return nil, ErrNotAuthenticated
		}
		return refreshed, nil
	}

	s.User = *verified
	s.LastVerifiedAt = m.now()
	if err := m.Store.Save(ctx, *s); err != nil {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// Clear deletes the session without talking to the auth service.
func (m *DefaultManager) Clear(ctx context.Context, sessionID string) {
	if err := m.Store.Delete(ctx, sessionID); err != nil {
		m.Logger.Warn("Failed to delete session", zap.Error(err))
	}
}
