package middlewares

import (
	"context"
	"net/http"
	"strings"

	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/utils"
)

// AuthMiddleware guards the admin API. A request authenticates with a bearer
// token or, for the guarded page surface, the session cookie carrying the
// same JWT. The token wraps a session id whose redis entry must still exist.
func (m *Middlewares) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// hasLiveSession reports whether the request carries a token bound to a
// session that still exists. Used by the page guard, which redirects rather
// than returning a JSON error.
func (m *Middlewares) hasLiveSession(r *http.Request) bool {
	token := bearerToken(r)
	if token == "" {
		return false
	}

	sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return false
	}

	session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
	if err != nil {
		return false
	}
	return session != nil
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
