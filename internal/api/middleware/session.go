package middleware

import (
	"context"
	"errors"
	"net/http"

	"stayfinder/internal/common"
	"stayfinder/internal/platform/session"
)

type contextKey string

const (
	UserIDCtxKey    contextKey = "userID"
	SessionIDCtxKey contextKey = "sessionID"
)

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "stayfinder_session"

// SessionID extracts the session ID cookie from a request, or "" when the
// client has none.
func SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Authenticator resolves the session cookie to a user ID and stores both in
// the request context. Requests without a live session are rejected; routes
// that tolerate anonymous callers stay outside this middleware.
func Authenticator(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionID(r)
			if sessionID == "" {
				common.RespondWithError(w, http.StatusUnauthorized, common.ErrUnauthenticated.Error())
				return
			}

			userID, err := store.UserID(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					common.RespondWithError(w, http.StatusUnauthorized, common.ErrUnauthenticated.Error())
				} else {
					common.RespondWithError(w, http.StatusInternalServerError, "failed to resolve session")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user's ID, if any.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int)
	return userID, ok
}
