package middleware

import (
	"context"
	"net/http"

	"github.com/goldcrust/storefront/internal/session"
)

// SessionCookie carries the opaque session id; the cart and checkout state it
// points at lives only in server memory.
const SessionCookie = "storefront_session"

type contextKey int

const sessionContextKey contextKey = iota

// WithSession attaches a session to cart/checkout routes. A missing or
// expired cookie gets a fresh session and a new cookie.
func WithSession(store *session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(SessionCookie); err == nil {
				sess, _ = store.Get(cookie.Value)
			}

			if sess == nil {
				sess = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session attached by WithSession, or nil on routes
// that skipped it.
func SessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}
