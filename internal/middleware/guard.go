// Package middleware holds the route guards. These are UX redirects
// only: the check runs client-of-the-data, with nothing behind it, so
// any real deployment needs a server-side authorization boundary in
// front of actual patient data.
package middleware

import (
	"net/http"

	"github.com/cradlecare/cradle/internal/model"
	"github.com/cradlecare/cradle/internal/session"
)

const loginPath = "/login"

// RequireAuth redirects requests without a readable session to the
// login view. Corrupt session data reads as absent.
func RequireAuth(sm *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := sm.Get(r.Context()); err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole additionally checks the session's role against the
// view's required role. Wrong-role sessions get the same redirect as
// absent ones; nothing further renders for the cycle.
func RequireRole(sm *session.Manager, role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sm.Get(r.Context())
			if err != nil || s.Role != role {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
