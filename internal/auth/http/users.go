package http

import (
	"errors"
	"net/http"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

type UsersHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a new user from url-encoded email and password
// fields. A taken email answers 400 so the caller can distinguish it from a
// malformed request body.
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "invalid form data"})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "email and password are required"})
		return
	}

	user, err := h.AuthService.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.MessageResponse{Message: "email already registered"})
			return
		}
		log.Error("failed to register user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.MessageResponse{Message: "server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Email: user.Email, Message: "user created"})
}

// HandleMe returns the user the auth middleware attached to the request.
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusForbidden, authsdk.ErrorResponse{Error: "Forbidden"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{ID: user.ID, Email: user.Email})
}
