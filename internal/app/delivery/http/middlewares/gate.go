package middlewares

import (
	"errors"
	"net/http"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/app/services/core/session"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"
)

// GateDecision is what the gate tells a navigation to do.
type GateDecision string

const (
	GateRender          GateDecision = "render"
	GateRedirectLogin   GateDecision = "redirect_login"
	GateRedirectDefault GateDecision = "redirect_default"
)

// GateOutcome pairs the decision with the path a redirect should target.
type GateOutcome struct {
	Decision     GateDecision
	RedirectPath string
}

// EvaluateGate is the pure access decision for one destination. An invalid,
// expired, or absent credential always redirects to login; a valid credential
// whose role is not in requiredRoles redirects to the default view, never to
// login. An empty requiredRoles admits every valid credential.
func EvaluateGate(credential *models.Credential, requiredRoles []models.Role, now time.Time) GateOutcome {
	if !session.IsValid(credential, now) {
		return GateOutcome{Decision: GateRedirectLogin, RedirectPath: constvars.LoginViewPath}
	}
	if len(requiredRoles) == 0 {
		return GateOutcome{Decision: GateRender}
	}
	role := session.RoleOf(credential)
	for _, required := range requiredRoles {
		if role == required {
			return GateOutcome{Decision: GateRender}
		}
	}
	return GateOutcome{Decision: GateRedirectDefault, RedirectPath: constvars.DefaultViewPath}
}

// RequireRoles applies the gate to a route. Redirect outcomes surface as 401
// or 403 with the Location header carrying the view the client should load.
func (m *Middlewares) RequireRoles(requiredRoles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, _ := r.Context().Value(constvars.ContextCredentialKey).(*models.Credential)

			outcome := EvaluateGate(credential, requiredRoles, time.Now())
			switch outcome.Decision {
			case GateRedirectLogin:
				w.Header().Set(constvars.HeaderLocation, outcome.RedirectPath)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNoCredential(nil))
			case GateRedirectDefault:
				w.Header().Set(constvars.HeaderLocation, outcome.RedirectPath)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(errors.New("role not in destination's required set")))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireCapability gates on a named permission rather than an explicit role
// list. Used where the route's meaning is "can do X" instead of "is role Y".
func (m *Middlewares) RequireCapability(capability models.Capability) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, _ := r.Context().Value(constvars.ContextCredentialKey).(*models.Credential)

			if !session.IsValid(credential, time.Now()) {
				w.Header().Set(constvars.HeaderLocation, constvars.LoginViewPath)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNoCredential(nil))
				return
			}
			if !session.HasCapability(credential, capability) {
				w.Header().Set(constvars.HeaderLocation, constvars.DefaultViewPath)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(errors.New("credential lacks capability "+string(capability))))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
