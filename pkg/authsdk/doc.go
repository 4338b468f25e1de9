/*
Package authsdk provides a client SDK for interacting with the authd
authentication service.

The package is organized around two main types:

  - SDKClient: unauthenticated operations (register, login, password reset, health)
  - Session: authenticated operations carried out with the session cookie

Create an SDKClient to interact with public endpoints:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Register a user
	msg, err := client.Register(ctx, "user@example.com", "password")

Login creates a Session that carries the issued cookie on every request:

	session, err := client.Login(ctx, "user@example.com", "password")
	profile, err := session.Profile(ctx)
	err = session.Logout(ctx)

Password resets flow through the unauthenticated client:

	token, err := client.RequestPasswordReset(ctx, "user@example.com")
	_, err = client.UpdatePassword(ctx, "user@example.com", token.ResetToken, "newpassword")

Errors from the service are surfaced as *APIError, carrying the HTTP status
code and the server's message.
*/
package authsdk
