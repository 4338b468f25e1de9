package authsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// sessionCookieName matches the cookie the service issues on login.
const sessionCookieName = "session_id"

// Session represents an authenticated browsing session created by Login.
// It carries the session cookie on every request until Logout.
type Session struct {
	client *SDKClient

	email     string
	sessionID string
}

// Login authenticates with email and password and returns a Session holding
// the issued cookie. Invalid credentials answer 401, surfaced as an APIError.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.doForm(ctx, http.MethodPost, "/sessions", form)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	var sessionID string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			sessionID = cookie.Value
		}
	}
	if sessionID == "" {
		return nil, fmt.Errorf("login response carried no %s cookie", sessionCookieName)
	}

	return &Session{
		client:    c,
		email:     msg.Email,
		sessionID: sessionID,
	}, nil
}

// Email returns the email the session was created for.
func (s *Session) Email() string {
	return s.email
}

// SessionID returns the raw session identifier. Useful for tests that want
// to tamper with the cookie.
func (s *Session) SessionID() string {
	return s.sessionID
}

// doSessionRequest performs a request carrying the session cookie.
func (s *Session) doSessionRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: s.sessionID})

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// Profile fetches the logged-in user's profile. A destroyed or stale session
// answers 403.
func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doSessionRequest(ctx, http.MethodGet, "/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Me fetches the authenticated user's record from /users/me.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doSessionRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout destroys the session server-side. The service answers with a 302
// redirect to the index page on success and 403 when the session does not
// resolve.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doSessionRequest(ctx, http.MethodDelete, "/sessions", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}
