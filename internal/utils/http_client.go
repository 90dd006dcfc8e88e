// Package utils provides small helpers shared across the client: the HTTP
// client used by the transport layer and unique name generation for
// temporary artifacts.
package utils

import (
	"context"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and adds
// optional request throttling.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithRateLimit(5)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client

	limiter *rate.Limiter
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRateLimit throttles requests to rps per second. A non-positive rps
// leaves the client unthrottled. The limiter is shared by clients derived
// with [HTTPClient.Sibling].
func (c *HTTPClient) WithRateLimit(rps float64) *HTTPClient {
	if rps <= 0 {
		return c
	}

	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	c.OnBeforeRequest(c.throttle)
	return c
}

// Sibling returns a new client sharing the limiter of c.
func (c *HTTPClient) Sibling() *HTTPClient {
	sibling := NewHTTPClient()
	if c.limiter != nil {
		sibling.limiter = c.limiter
		sibling.OnBeforeRequest(sibling.throttle)
	}
	return sibling
}

// Wait blocks until the limiter admits one request. It is meant for
// requests sent through the underlying *http.Client directly.
func (c *HTTPClient) Wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *HTTPClient) throttle(_ *resty.Client, r *resty.Request) error {
	return c.Wait(r.Context())
}
