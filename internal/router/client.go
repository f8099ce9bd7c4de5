// Package router talks to the mesh router's web UI endpoint that lists
// attached devices.
package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/model"
)

const (
	DefaultHost        = "orbilogin.com"
	AttachedDevicesURI = "/ajax/get_attached_devices"
)

// Credentials are passed through to the router as HTTP basic auth.
type Credentials struct {
	Username string
	Password string
}

// Client fetches the attached-device list. It has no mutable state and is
// safe to share between goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a Client for host, which may be a bare host[:port] or
// a full http(s) base URL. A nil httpClient uses a client without a
// timeout, so cancellation comes only from the request context.
func NewClient(host string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:    baseURL(host),
		httpClient: httpClient,
		logger:     logger,
	}
}

func baseURL(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultHost
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/")
}

// Endpoint returns the full URL that Fetch posts to.
func (c *Client) Endpoint() string {
	endpoint, err := url.JoinPath(c.baseURL, AttachedDevicesURI)
	if err != nil {
		return c.baseURL + AttachedDevicesURI
	}
	return endpoint
}

// Fetch performs one authenticated request and decodes the response.
// Transport failures and non-2xx statuses are KindNetwork (an auth failure
// is reported the same way), bad bodies are KindResponseParse.
func (c *Client) Fetch(ctx context.Context, creds Credentials) (*model.AttachedDevices, error) {
	endpoint := c.Endpoint()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, http.NoBody)
	if err != nil {
		return nil, apperr.New(apperr.KindNetwork, endpoint, fmt.Errorf("build request: %w", err))
	}
	// A POST with NoBody goes out with an explicit "Content-Length: 0".
	req.SetBasicAuth(creds.Username, creds.Password)

	c.logger.Debug("fetching attached devices", "url", endpoint, "username", creds.Username)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.KindNetwork, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.KindNetwork, endpoint, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Errorf(apperr.KindNetwork, endpoint, "router returned %d: %s", resp.StatusCode, snippet(body))
	}

	devices, err := Decode(body)
	if err != nil {
		c.logger.Debug("undecodable response", "url", endpoint, "body", snippet(body))
		return nil, err
	}

	c.logger.Debug("fetched attached devices",
		"satellites", len(devices.Satellites),
		"devices", len(devices.Devices))
	return devices, nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
