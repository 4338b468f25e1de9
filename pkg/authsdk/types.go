package authsdk

// MessageResponse is the envelope most endpoints answer with: an optional
// echo of the submitted email plus a human-readable message.
type MessageResponse struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ProfileResponse carries the logged-in user's email.
type ProfileResponse struct {
	Email string `json:"email"`
}

// ResetTokenResponse returns a freshly issued password-reset token.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// UserResponse describes the authenticated user behind /users/me.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse is the envelope the auth middlewares answer with.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
