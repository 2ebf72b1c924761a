// Package viacep is a client for the ViaCEP postal code directory (https://viacep.com.br).
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/render"
	"github.com/prior-it/storefront/config"
	"github.com/prior-it/storefront/core"
)

// Client looks up addresses by postal code. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// The directory response. The directory does not use status codes for unknown postal codes, it
// returns a body that only contains an "erro" field instead.
type response struct {
	Cep         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro"`
}

// Only the presence of "erro" matters, its value has been both a boolean and a string in
// different versions of the service.
func (r response) notFound() bool {
	return len(r.Erro) > 0 && string(r.Erro) != "null"
}

// New creates a client for the public ViaCEP service.
func New() *Client {
	return &Client{
		baseURL: config.DefaultLookupURL,
		http:    http.DefaultClient,
		logger:  slog.Default(),
	}
}

// NewFromConfig creates a client using the lookup configuration.
func NewFromConfig(cfg config.LookupConfig) *Client {
	client := New()
	if len(cfg.URL) > 0 {
		client = client.WithBaseURL(cfg.URL)
	}
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		client = client.WithHTTPClient(&http.Client{Timeout: timeout})
	}
	return client
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c.baseURL = baseURL
	return c
}

func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.http = client
	return c
}

func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

func (c *Client) endpoint(code core.PostalCode) string {
	return c.baseURL + url.PathEscape(code.String()) + "/json/"
}

// Lookup issues a single request for the specified postal code.
// Unknown postal codes return a *core.LookupFailure, which matches core.ErrPostalCodeNotFound.
// Any other error means the directory could not be reached or returned garbage.
func (c *Client) Lookup(ctx context.Context, code core.PostalCode) (*core.Address, error) {
	if code.IsZero() {
		return nil, fmt.Errorf("cannot look up empty postal code: %w", core.ErrInvalidPostalCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(code), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Looking up postal code", "postal_code", code.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postal code lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("postal code lookup failed: unexpected status %q", resp.Status)
	}

	var body response
	if err := render.DecodeJSON(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("cannot decode postal code lookup response: %w", err)
	}

	if body.notFound() {
		c.logger.Debug("Postal code not found", "postal_code", code.String())
		return nil, &core.LookupFailure{PostalCode: code}
	}

	return &core.Address{
		PostalCode:   code,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		Complement:   body.Complemento,
		City:         body.Localidade,
		State:        core.StateCode(strings.ToUpper(body.UF)),
	}, nil
}
