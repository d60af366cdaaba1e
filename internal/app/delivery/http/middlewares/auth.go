package middlewares

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// SessionAuth requires the bearer token issued at session registration. The
// token's session claim must match the session named in the URL, so one
// session's token cannot trigger another session's migration.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("authorization header is not a bearer token")))
			return
		}

		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if urlSessionID := chi.URLParam(r, constvars.URLParamSessionID); urlSessionID != "" && urlSessionID != sessionID {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("token does not belong to session %s", urlSessionID)))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
