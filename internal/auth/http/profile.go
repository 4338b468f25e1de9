package http

import (
	"net/http"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

type ProfileHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the email of the user owning the session cookie, or 403
// when the request carries no resolvable session.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var sessionID string
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	user, ok, err := h.AuthService.UserFromSession(ctx, sessionID)
	if err != nil {
		log.Error("session lookup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusForbidden, authsdk.MessageResponse{Message: "Forbidden"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ProfileResponse{Email: user.Email})
}
