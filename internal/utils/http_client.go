package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests go through transport.
// A nil transport keeps the resty default. A positive timeout bounds every
// request.
//
// Example usage:
//
//	client := utils.NewHTTPClient(gw, 10*time.Second)
//	resp, err := client.R().Get("http://localhost:4000/health")
func NewHTTPClient(transport http.RoundTripper, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if transport != nil {
		client.SetTransport(transport)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
