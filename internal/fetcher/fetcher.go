// internal/fetcher/fetcher.go
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

const userAgent = "quakelight/1"

// Fetcher performs one GET per call against the event service.
// No retries.
type Fetcher struct {
	client *http.Client
}

// New wraps an HTTP client. A nil client uses http.DefaultClient.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// NewHTTPClient builds the client used against the event service:
// HTTP/2 over TLS when the server offers it, one overall request timeout.
// timeout <= 0 means no timeout.
func NewHTTPClient(timeout time.Duration) (*http.Client, error) {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        2,
		IdleConnTimeout:     90 * time.Second,
	}
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("fetcher: configure http2: %w", err)
	}

	client := &http.Client{
		Transport: tr,
	}
	if timeout > 0 {
		client.Timeout = timeout
	}

	return client, nil
}

// Fetch issues a single GET for q and returns the whole body.
// The response body is closed on every path.
func (f *Fetcher) Fetch(ctx context.Context, q Query) ([]byte, error) {
	u := q.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: u, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: transportKind(err), URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Kind: KindStatus, URL: u, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := KindBody
		if transportKind(err) == KindTimeout {
			kind = KindTimeout
		}
		return nil, &FetchError{Kind: kind, URL: u, Err: err}
	}

	return body, nil
}
