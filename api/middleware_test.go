package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jmorel/portfolio-cms-backend/models"
)

const testSecret = "test-session-secret"

func signSessionToken(t *testing.T, secret string, subject string, role models.Role, expiry time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireAdminAcceptsValidAdminToken(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	userID := uuid.New()

	var seen models.Principal
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			t.Fatalf("principal missing from context: %v", err)
		}
		seen = principal
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, testSecret, userID.String(), models.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if seen.UserID != userID || seen.Role != models.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", seen)
	}
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminRejectsWrongSecret(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "other-secret", uuid.NewString(), models.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminRejectsExpiredToken(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, testSecret, uuid.NewString(), models.RoleAdmin, -time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminRejectsViewerRole(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, testSecret, uuid.NewString(), models.RoleViewer, time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusForbidden)
	}
}

func TestWithPrincipalPassesThroughAnonymous(t *testing.T) {
	m := newAuthMiddleware(testSecret)

	reached := false
	handler := m.withPrincipal(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if _, err := ctxGetPrincipal(r.Context()); err == nil {
			t.Fatal("anonymous request should not carry a principal")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/download/resume/some-id", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !reached {
		t.Fatal("handler should be reached without a session")
	}
}

func TestWithPrincipalAttachesValidSession(t *testing.T) {
	m := newAuthMiddleware(testSecret)
	userID := uuid.New()

	handler := m.withPrincipal(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			t.Fatalf("expected principal: %v", err)
		}
		if principal.UserID != userID {
			t.Fatalf("unexpected principal user: %s", principal.UserID)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/download/resume/some-id", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, testSecret, userID.String(), models.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
}

func TestLogInternalServerErrorsRecoversPanic(t *testing.T) {
	handler := LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusInternalServerError)
	}
}
