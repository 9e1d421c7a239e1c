// Package httpclient fetches JSON documents from the inventory service
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	// DefaultTimeout bounds a whole request when the caller passes zero
	DefaultTimeout = 10 * time.Second

	// MaxResponseSize caps a response body at 32MB
	MaxResponseSize = 32 << 20

	// UserAgent identifies the middleware to upstream services
	UserAgent = "mirror-middleware/1.0"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks -source=client.go Client

// Client fetches a document body
type Client interface {
	// Get returns the body of a 2xx answer. Other statuses yield an *HTTPError.
	Get(ctx context.Context, url string) ([]byte, error)
}

type defaultClient struct {
	http *http.Client
}

// NewDefaultClient returns a Client whose requests time out after timeout,
// or DefaultTimeout when timeout is zero
func NewDefaultClient(timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &defaultClient{http: &http.Client{Timeout: timeout}}
}

func (c *defaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, NewHTTPError(resp.StatusCode, url, resp.Status)
	}

	return readLimited(resp)
}

func readLimited(resp *http.Response) ([]byte, error) {
	if resp.ContentLength > MaxResponseSize {
		return nil, fmt.Errorf("response size %d bytes exceeds maximum allowed size of %d bytes",
			resp.ContentLength, MaxResponseSize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response body exceeds maximum allowed size of %d bytes", MaxResponseSize)
	}
	return body, nil
}
