// Package storeapi talks to the store backend that owns carts, shipping quotes and installment
// pricing. Every mutating request carries the CSRF token the client was created with.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/prior-it/storefront/config"
)

const (
	HeaderCSRFToken = "X-CSRFToken"
	CookieCSRFToken = "csrftoken"
	CookieDevice    = "device"
)

var (
	ErrMissingCSRFToken = errors.New("a CSRF token is required to talk to the store backend")
	ErrMissingBaseURL   = errors.New("the store backend url is required")
	ErrUnexpectedStatus = errors.New("unexpected status from the store backend")
)

// Client is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	csrfToken string
	deviceID  string
	http      *http.Client
	logger    *slog.Logger
}

// New creates a client for the store backend at baseURL.
// A random device id is generated, use WithDeviceID to continue an existing anonymous cart.
func New(baseURL string, csrfToken string) (*Client, error) {
	if len(baseURL) == 0 {
		return nil, ErrMissingBaseURL
	}
	if len(csrfToken) == 0 {
		return nil, ErrMissingCSRFToken
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store backend url %q: %w", baseURL, err)
	}
	return &Client{
		baseURL:   parsed,
		csrfToken: csrfToken,
		deviceID:  uuid.NewString(),
		http:      http.DefaultClient,
		logger:    slog.Default(),
	}, nil
}

// NewFromConfig creates a client using the store configuration.
func NewFromConfig(cfg config.StoreConfig) (*Client, error) {
	client, err := New(cfg.URL, cfg.CSRFToken)
	if err != nil {
		return nil, err
	}
	if len(cfg.DeviceID) > 0 {
		if client, err = client.WithDeviceID(cfg.DeviceID); err != nil {
			return nil, err
		}
	}
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		client = client.WithHTTPClient(&http.Client{Timeout: timeout})
	}
	return client, nil
}

func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.http = client
	return c
}

func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// WithDeviceID sets the device cookie that identifies an anonymous customer.
func (c *Client) WithDeviceID(id string) (*Client, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid device id %q: %w", id, err)
	}
	c.deviceID = parsed.String()
	return c, nil
}

// DeviceID returns the device cookie value that is sent with every request.
func (c *Client) DeviceID() string {
	return c.deviceID
}

func (c *Client) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("cannot create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set(HeaderCSRFToken, c.csrfToken)
		req.AddCookie(&http.Cookie{Name: CookieCSRFToken, Value: c.csrfToken})
	}
	req.AddCookie(&http.Cookie{Name: CookieDevice, Value: c.deviceID})
	return req, nil
}

// do sends the request and returns the response if it has a 2xx status. The caller must close the body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	c.logger.Debug("Store backend request", "method", req.Method, "url", req.URL.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w: %q", req.Method, req.URL.Path, ErrUnexpectedStatus, resp.Status)
	}
	return resp, nil
}
