package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RequestPasswordReset asks the service for a password-reset token.
// Unknown emails answer 403, surfaced as an APIError.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) (*ResetTokenResponse, error) {
	form := url.Values{}
	form.Set("email", email)

	resp, err := c.doForm(ctx, http.MethodPost, "/reset_password", form)
	if err != nil {
		return nil, err
	}

	var token ResetTokenResponse
	if err := decodeJSON(resp, &token, http.StatusOK); err != nil {
		return nil, err
	}

	return &token, nil
}

// UpdatePassword redeems a reset token for a new password. The token is
// single use; redeeming it again answers 403.
func (c *SDKClient) UpdatePassword(ctx context.Context, email, resetToken, newPassword string) (*MessageResponse, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("reset_token", resetToken)
	form.Set("new_password", newPassword)

	resp, err := c.doForm(ctx, http.MethodPut, "/reset_password", form)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	return &msg, nil
}
