package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindnest/clients"
	"mindnest/middleware"
	"mindnest/models"
	"mindnest/services/session"

	"github.com/gin-gonic/gin"
)

type fakeManager struct {
	session *session.Session
	cleared []string
}

func (f *fakeManager) Login(ctx context.Context, email, password string) (*session.LoginResult, error) {
	return nil, nil
}

func (f *fakeManager) Register(ctx context.Context, email, password, role string) (*session.LoginResult, error) {
	return nil, nil
}

func (f *fakeManager) Logout(ctx context.Context, sessionID string) {}

func (f *fakeManager) Refresh(ctx context.Context, sessionID string) bool { return true }

func (f *fakeManager) Resolve(ctx context.Context, cookieValue string) (*session.Session, error) {
	if f.session == nil {
		return nil, session.ErrNotAuthenticated
	}
	return f.session, nil
}

func (f *fakeManager) Clear(ctx context.Context, sessionID string) {
	f.cleared = append(f.cleared, sessionID)
}

func (f *fakeManager) RedirectPath(role string) string { return "/dashboard/user" }

func serveWithError(t *testing.T, manager *fakeManager, failure error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	helper := ErrorHelper{Manager: manager, CookieName: "sess"}
	r := gin.New()
	r.GET("/screen", middleware.SessionMiddleware(manager, "sess"), func(c *gin.Context) {
		helper.Handle(c, failure, "Failed to load screen")
	})

	req := httptest.NewRequest(http.MethodGet, "/screen", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: "sess", Value: "anything"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleUpstream401ClearsSession(t *testing.T) {
	manager := &fakeManager{session: &session.Session{
		ID:   "sid-1",
		User: models.User{ID: "u-1", Role: models.RolePatient},
	}}

	w := serveWithError(t, manager, &clients.APIError{Status: http.StatusUnauthorized, Message: "Token expired"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(manager.cleared) != 1 || manager.cleared[0] != "sid-1" {
		t.Fatalf("expected the session cleared, got %v", manager.cleared)
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "sess=") {
		t.Fatalf("expected the session cookie expired, got %q", cookie)
	}
}

func TestHandleOtherAPIErrorsAreRecoverable(t *testing.T) {
	manager := &fakeManager{session: &session.Session{
		ID:   "sid-1",
		User: models.User{ID: "u-1", Role: models.RolePatient},
	}}

	w := serveWithError(t, manager, &clients.APIError{Status: http.StatusConflict, Message: "Slot already booked"})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected the upstream status passed through, got %d", w.Code)
	}
	if len(manager.cleared) != 0 {
		t.Fatal("a non-401 failure must not clear the session")
	}
	if body := w.Body.String(); !strings.Contains(body, "Slot already booked") {
		t.Fatalf("expected the server message surfaced, got %s", body)
	}
}

func TestHandleHidesInternalErrors(t *testing.T) {
	manager := &fakeManager{session: &session.Session{
		ID:   "sid-1",
		User: models.User{ID: "u-1", Role: models.RolePatient},
	}}

	w := serveWithError(t, manager, errors.New("dial tcp: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "dial tcp") {
		t.Fatalf("internal error leaked to the browser: %s", body)
	}
	if !strings.Contains(body, "Failed to load screen") {
		t.Fatalf("expected the fallback message, got %s", body)
	}
}
