package middlewares

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/services/shared/jwtmanager"
	"clinicdesk-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T) (*Middlewares, *jwtmanager.JWTManager) {
	t.Helper()
	jwtManager := jwtmanager.NewJWTManager("test-secret", time.Hour)
	return NewMiddlewares(zap.NewNop(), jwtManager, &config.InternalConfig{}), jwtManager
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	rec := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenPassesSession(t *testing.T) {
	m, jwtManager := newTestMiddlewares(t)

	token, err := jwtManager.Generate(jwtmanager.Session{Role: constvars.RoleAdmin})
	require.NoError(t, err)

	var captured *jwtmanager.Session
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*jwtmanager.Session)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, constvars.RoleAdmin, captured.Role)
}

func TestRequireRole(t *testing.T) {
	m, jwtManager := newTestMiddlewares(t)

	doctorToken, err := jwtManager.Generate(jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 3})
	require.NoError(t, err)

	adminOnly := m.Authenticate(m.RequireRole(constvars.RoleAdmin)(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+doctorToken)
	rec := httptest.NewRecorder()
	adminOnly.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	either := m.Authenticate(m.RequireRole(constvars.RoleAdmin, constvars.RoleDoctor)(okHandler()))
	req = httptest.NewRequest(http.MethodGet, "/admin/schedules", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+doctorToken)
	rec = httptest.NewRecorder()
	either.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
