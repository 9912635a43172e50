package middlewares

import (
	"testing"

	"nutrisurvey-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	t.Run("anonymous visitor may open the login page", func(t *testing.T) {
		allowed, redirectTo := Decide(constvars.RouteLogin, false)
		assert.True(t, allowed)
		assert.Empty(t, redirectTo)
	})

	t.Run("logged-in admin is bounced from auth pages to the dashboard", func(t *testing.T) {
		allowed, redirectTo := Decide(constvars.RouteLogin, true)
		assert.False(t, allowed)
		assert.Equal(t, constvars.RouteDashboard, redirectTo)
	})

	t.Run("anonymous visitor on a guarded page is sent to login with the origin preserved", func(t *testing.T) {
		allowed, redirectTo := Decide(constvars.RouteDashboard, false)
		assert.False(t, allowed)
		assert.Equal(t, "/Login?redirect=%2FFindevaluationresults", redirectTo)
	})

	t.Run("logged-in admin may open guarded pages", func(t *testing.T) {
		allowed, redirectTo := Decide(constvars.RouteDashboard, true)
		assert.True(t, allowed)
		assert.Empty(t, redirectTo)
	})

	t.Run("all public prefixes pass without a session", func(t *testing.T) {
		for _, prefix := range constvars.PublicRoutePrefixes {
			allowed, _ := Decide(prefix, false)
			assert.True(t, allowed, "prefix %s should be public", prefix)
		}
	})

	t.Run("prefix match covers sub paths", func(t *testing.T) {
		allowed, _ := Decide("/OTP/confirm", false)
		assert.True(t, allowed)
	})

	t.Run("root is public for anonymous visitors", func(t *testing.T) {
		allowed, _ := Decide("/", false)
		assert.True(t, allowed)
	})
}
