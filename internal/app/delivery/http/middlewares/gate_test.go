package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func upstreamCredential(t *testing.T, role string, expiresAt time.Time) *models.Credential {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "user@example.com",
		"user_id": "user-1",
		"name":    "Test Operator",
		"role":    role,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return &models.Credential{Token: signed}
}

func TestEvaluateGate(t *testing.T) {
	now := time.Now()
	doctor := upstreamCredential(t, "doctor", now.Add(time.Hour))

	t.Run("Valid credential with matching role renders", func(t *testing.T) {
		outcome := EvaluateGate(doctor, []models.Role{models.RoleDoctor, models.RoleAdmin}, now)
		assert.Equal(t, GateRender, outcome.Decision)
	})

	t.Run("No role restriction admits every valid credential", func(t *testing.T) {
		outcome := EvaluateGate(doctor, nil, now)
		assert.Equal(t, GateRender, outcome.Decision)
	})

	t.Run("Absent credential redirects to login", func(t *testing.T) {
		outcome := EvaluateGate(nil, []models.Role{models.RoleDoctor}, now)
		assert.Equal(t, GateRedirectLogin, outcome.Decision)
		assert.Equal(t, constvars.LoginViewPath, outcome.RedirectPath)
	})

	t.Run("Expired credential redirects to login", func(t *testing.T) {
		expired := upstreamCredential(t, "doctor", now.Add(-time.Minute))
		outcome := EvaluateGate(expired, []models.Role{models.RoleDoctor}, now)
		assert.Equal(t, GateRedirectLogin, outcome.Decision, "expired must behave exactly like logged out")
	})

	t.Run("Malformed credential redirects to login", func(t *testing.T) {
		outcome := EvaluateGate(&models.Credential{Token: "garbage"}, nil, now)
		assert.Equal(t, GateRedirectLogin, outcome.Decision)
	})

	t.Run("Valid credential with wrong role redirects to default view", func(t *testing.T) {
		employee := upstreamCredential(t, "employee", now.Add(time.Hour))
		outcome := EvaluateGate(employee, []models.Role{models.RoleAdmin}, now)
		assert.Equal(t, GateRedirectDefault, outcome.Decision, "role mismatch must never bounce to login")
		assert.Equal(t, constvars.DefaultViewPath, outcome.RedirectPath)
	})
}

func gateTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}
}

func requestWithCredential(credential *models.Credential) *http.Request {
	req := httptest.NewRequest("GET", "/analysis/result", nil)
	ctx := context.WithValue(req.Context(), constvars.ContextSessionIDKey, "session-1")
	ctx = context.WithValue(ctx, constvars.ContextCredentialKey, credential)
	return req.WithContext(ctx)
}

func TestRequireRoles(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Matching role passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireRoles(models.RoleAdmin)(okHandler)
		admin := upstreamCredential(t, "admin", time.Now().Add(time.Hour))
		handler.ServeHTTP(rr, requestWithCredential(admin))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing credential yields 401 with login location", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireRoles(models.RoleAdmin)(okHandler)
		handler.ServeHTTP(rr, requestWithCredential(nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.LoginViewPath, rr.Header().Get(constvars.HeaderLocation))
	})

	t.Run("Wrong role yields 403 with default view location", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireRoles(models.RoleAdmin)(okHandler)
		employee := upstreamCredential(t, "employee", time.Now().Add(time.Hour))
		handler.ServeHTTP(rr, requestWithCredential(employee))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, constvars.DefaultViewPath, rr.Header().Get(constvars.HeaderLocation))
	})
}

func TestRequireCapability(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Doctor may analyze", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireCapability(models.CapabilityAnalyze)(okHandler)
		doctor := upstreamCredential(t, "doctor", time.Now().Add(time.Hour))
		handler.ServeHTTP(rr, requestWithCredential(doctor))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Employee may not analyze", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireCapability(models.CapabilityAnalyze)(okHandler)
		employee := upstreamCredential(t, "employee", time.Now().Add(time.Hour))
		handler.ServeHTTP(rr, requestWithCredential(employee))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Employee may view reports", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireCapability(models.CapabilityViewReports)(okHandler)
		employee := upstreamCredential(t, "employee", time.Now().Add(time.Hour))
		handler.ServeHTTP(rr, requestWithCredential(employee))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Expired credential yields 401", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := gateTestMiddlewares().RequireCapability(models.CapabilityViewReports)(okHandler)
		expired := upstreamCredential(t, "doctor", time.Now().Add(-time.Minute))
		handler.ServeHTTP(rr, requestWithCredential(expired))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.LoginViewPath, rr.Header().Get(constvars.HeaderLocation))
	})
}
