package http

import (
	"net/http"

	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/lanternhq/authd/pkg/httpx"
)

// IndexHandler greets visitors at the root route.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: "Bienvenue"})
}
