package middlewares

import (
	"context"
	"net/http"
	"strings"

	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"
)

// Authenticate resolves the gateway token into a session ID and loads the
// stored credential. The credential may be nil after this middleware; gate
// middlewares decide what that means per route.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		credential, err := m.CredentialStore.Current(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionIDKey, sessionID)
		ctx = context.WithValue(ctx, constvars.ContextCredentialKey, credential)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
