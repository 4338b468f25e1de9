package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lanternhq/authd/internal/auth/service"
	"github.com/lanternhq/authd/internal/auth/store"
	"github.com/lanternhq/authd/pkg/httpx"
	"github.com/lanternhq/authd/pkg/slogx"
)

// Auth types selectable via configuration for the guarded routes.
const (
	AuthTypeSession = "session"
	AuthTypeBasic   = "basic"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	authType     string

	store       store.Store
	AuthService *service.AuthService
}

func NewRouter(buildVersion, authType string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		authType:     authType,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerIndex()
	r.registerUsers()
	r.registerSessions()
	r.registerResetPassword()
	r.registerSystem()
}

// guard returns the auth middleware selected by AUTH_TYPE. Session-cookie
// auth is the default; basic auth reproduces the HTTP Basic exercise.
func (r *Router) guard() httpx.Middleware {
	if r.authType == AuthTypeBasic {
		return BasicAuthMiddleware(r.AuthService)
	}
	return SessionAuthMiddleware(r.AuthService)
}

func (r *Router) registerIndex() {
	r.Mux.Handle("GET /{$}", http.HandlerFunc(IndexHandler))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /users", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("GET /users/me", httpx.Chain(http.HandlerFunc(h.HandleMe), r.guard()))
}

func (r *Router) registerSessions() {
	sessions := &SessionsHandler{AuthService: r.AuthService}
	profile := &ProfileHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /sessions", http.HandlerFunc(sessions.HandleLogin))
	r.Mux.Handle("DELETE /sessions", http.HandlerFunc(sessions.HandleLogout))
	r.Mux.Handle("GET /profile", profile)
}

func (r *Router) registerResetPassword() {
	h := &ResetPasswordHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /reset_password", http.HandlerFunc(h.HandleRequest))
	r.Mux.Handle("PUT /reset_password", http.HandlerFunc(h.HandleUpdate))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
