package http

import (
	"errors"
	"net/http"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

type ResetPasswordHandler struct {
	AuthService *service.AuthService
}

// HandleRequest issues a password-reset token for a registered email.
// Unknown emails answer 403, keeping the endpoint from confirming which
// addresses are registered with a distinct status.
func (h *ResetPasswordHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "invalid form data"})
		return
	}

	email := r.FormValue("email")
	token, err := h.AuthService.IssueResetToken(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusForbidden, authsdk.MessageResponse{Message: "Forbidden"})
			return
		}
		log.Error("failed to issue reset token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ResetTokenResponse{Email: email, ResetToken: token})
}

// HandleUpdate consumes a reset token and installs the new password.
// An unknown or already-consumed token answers 403.
func (h *ResetPasswordHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "invalid form data"})
		return
	}

	email := r.FormValue("email")
	resetToken := r.FormValue("reset_token")
	newPassword := r.FormValue("new_password")

	if err := h.AuthService.ConsumeResetToken(ctx, resetToken, newPassword); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			httpx.WriteJSON(w, http.StatusForbidden, authsdk.MessageResponse{Message: "Forbidden"})
			return
		}
		log.Error("failed to update password", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Email: email, Message: "Password updated"})
}
