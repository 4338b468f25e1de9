package domain

import "time"

type User struct {
	ID           string
	Email        string // lowercased, unique
	PasswordHash string // argon2 encoded
	SessionID    string // "" when no active session
	ResetToken   string // "" when no pending reset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoggedIn reports whether the user has an active session.
func (u User) LoggedIn() bool {
	return u.SessionID != ""
}

// ResetPending reports whether an unredeemed reset token is outstanding.
func (u User) ResetPending() bool {
	return u.ResetToken != ""
}
