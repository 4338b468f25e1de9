package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the authd authentication service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,

			// Logout answers with a redirect to the index page; the SDK
			// wants to observe the 302 itself rather than follow it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}
