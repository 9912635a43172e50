package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"nutrisurvey-service/internal/pkg/constvars"
)

// Decide applies the page access rules: anonymous visitors may only reach the
// public pages, while logged-in admins are bounced off the auth pages straight
// to the dashboard. It returns whether the request may pass and, if not, where
// to send it instead.
func Decide(path string, hasSession bool) (allowed bool, redirectTo string) {
	if isPublicRoute(path) {
		if hasSession {
			return false, constvars.RouteDashboard
		}
		return true, ""
	}

	if hasSession {
		return true, ""
	}

	return false, constvars.RouteLogin + "?" + constvars.RouteRedirectParam + "=" + url.QueryEscape(path)
}

// PageGuard enforces Decide over the guarded page surface with temporary
// redirects, so the browser keeps the original method on retry.
func (m *Middlewares) PageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, redirectTo := Decide(r.URL.Path, m.hasLiveSession(r))
		if !allowed {
			http.Redirect(w, r, redirectTo, constvars.StatusTemporaryRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isPublicRoute(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range constvars.PublicRoutePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
