package middleware

import (
	"context"
	"errors"
	"net/http"

	"emporia-be/internal/flash"
	"emporia-be/internal/logger"
	"emporia-be/internal/session"
	"emporia-be/internal/user"

	"go.uber.org/zap"
)

// SessionCookieName is the cookie holding the opaque session token.
const SessionCookieName = "session_token"

type contextKey string

const (
	sessionKey contextKey = "session"
	tokenKey   contextKey = "sessionToken"
)

func WithSessionContext(ctx context.Context, token string, sess *session.Session) context.Context {
	ctx = context.WithValue(ctx, tokenKey, token)
	return context.WithValue(ctx, sessionKey, sess)
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// ResolveSession resolves the session cookie, if any, into the request
// context. It never rejects; the guards below do that.
func ResolveSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(r.Context(), c.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					logger.FromCtx(r.Context()).Error("failed to resolve session", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			r = r.WithContext(WithSessionContext(r.Context(), c.Value, sess))
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth gates a route on an authenticated session. Must sit inside
// ResolveSession.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			flash.Danger(w, "You must be logged in to access this page")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates a route on the admin role. It composes after
// RequireAuth: a missing session redirects to login, a wrong role to the
// user home. The two failures are distinct on purpose.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		if sess.Role != user.RoleAdmin {
			flash.Danger(w, "Access restricted")
			http.Redirect(w, r, "/user_home", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
