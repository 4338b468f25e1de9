package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a new user account.
// A 400 with "email already registered" is returned as an APIError when the
// email is already taken.
func (c *SDKClient) Register(ctx context.Context, email, password string) (*MessageResponse, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.doForm(ctx, http.MethodPost, "/users", form)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	return &msg, nil
}

// MeWithBasicAuth fetches the authenticated user's record using HTTP Basic
// credentials. This only succeeds against a service running with
// AUTH_TYPE=basic.
func (c *SDKClient) MeWithBasicAuth(ctx context.Context, email, password string) (*UserResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/users/me"), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(email, password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}
