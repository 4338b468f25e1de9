package http

import (
	"net/http"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

type SessionsHandler struct {
	AuthService *service.AuthService
}

// HandleLogin validates credentials and, on success, mints a session id and
// sets it as the session cookie. Wrong credentials answer 401 without
// leaking whether the email exists.
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "invalid form data"})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, ok, err := h.AuthService.VerifyCredentials(ctx, email, password)
	if err != nil {
		log.Error("login check failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.MessageResponse{Message: "Unauthorized"})
		return
	}

	sessionID, err := h.AuthService.CreateSession(ctx, user.Email)
	if err != nil {
		log.Error("failed to create session", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}
	if sessionID == "" {
		// The user vanished between the credential check and the mint.
		httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.MessageResponse{Message: "Unauthorized"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Echo the stored (normalized) email so mixed-case logins report the
	// same identity string registration did.
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Email: user.Email, Message: "logged in"})
}

// HandleLogout destroys the session behind the cookie and redirects home.
// A cookie that does not resolve answers 403.
func (h *SessionsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
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

	if err := h.AuthService.DestroySession(ctx, user.ID); err != nil {
		log.Error("failed to destroy session", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}

	// Expire the cookie and send the client back to the welcome page.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
