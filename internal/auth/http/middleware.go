package http

import (
	"net/http"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

// sessionCookieName is the cookie the boundary transports session ids in.
// The core treats the value as an uninterpreted string.
const sessionCookieName = "session_id"

// SessionAuthMiddleware authenticates requests by resolving the session
// cookie to a user. Missing cookie yields 401, an id that does not resolve
// yields 403, mirroring the session-auth exercise semantics.
func SessionAuthMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.ErrorResponse{Error: "Unauthorized"})
				return
			}

			user, ok, err := auth.UserFromSession(ctx, cookie.Value)
			if err != nil {
				log.Error("session lookup failed", "err", err)
				httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{Error: "Internal Server Error"})
				return
			}
			if !ok {
				httpx.WriteJSON(w, http.StatusForbidden, authsdk.ErrorResponse{Error: "Forbidden"})
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithUser(ctx, user)))
		})
	}
}

// BasicAuthMiddleware authenticates requests with HTTP Basic credentials
// verified against the auth service. Missing or malformed headers yield 401,
// wrong credentials 403.
func BasicAuthMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="authd"`)
				httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.ErrorResponse{Error: "Unauthorized"})
				return
			}

			user, valid, err := auth.VerifyCredentials(ctx, email, password)
			if err != nil {
				log.Error("credential check failed", "err", err)
				httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{Error: "Internal Server Error"})
				return
			}
			if !valid {
				httpx.WriteJSON(w, http.StatusForbidden, authsdk.ErrorResponse{Error: "Forbidden"})
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithUser(ctx, user)))
		})
	}
}
