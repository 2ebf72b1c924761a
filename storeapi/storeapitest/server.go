// Package storeapitest provides an in-memory store backend for tests.
package storeapitest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/storeapi"
)

// Call is a request received by the fake backend.
type Call struct {
	Method    string
	Path      string
	CSRFToken string
	Device    string
	Body      map[string]any
	Query     string
}

// Backend mimics the store backend routes used by the storefront.
type Backend struct {
	*httptest.Server

	Token string
	// Shipping is returned by get_shipping_infos
	Shipping []core.ShippingOption

	mu    sync.Mutex
	fail  bool
	calls []Call
}

// New starts a fake backend that accepts the specified CSRF token. It is closed when the test ends.
func New(t testing.TB, token string) *Backend {
	t.Helper()
	backend := &Backend{
		Token: token,
		Shipping: []core.ShippingOption{
			{ServiceCode: core.ServiceSEDEX, Price: "25,90", DaysToDeliver: "2", ErrorCode: "0"},
			{ServiceCode: core.ServicePAC, Price: "15,10", DaysToDeliver: "7", ErrorCode: "0"},
		},
	}
	backend.Server = httptest.NewServer(backend.router())
	t.Cleanup(backend.Close)
	return backend
}

// Client returns a storeapi client that talks to this backend with the configured token.
func (b *Backend) Client(t testing.TB) *storeapi.Client {
	t.Helper()
	client, err := storeapi.New(b.URL, b.Token)
	if err != nil {
		t.Fatalf("cannot create store client: %v", err)
	}
	return client.WithHTTPClient(b.Server.Client())
}

// Calls returns every request the backend received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	calls := make([]Call, len(b.calls))
	copy(calls, b.calls)
	return calls
}

func (b *Backend) router() http.Handler {
	logger := &httplog.Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Options: httplog.Options{
			LogLevel: slog.LevelWarn,
			Concise:  true,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httplog.RequestLogger(logger))
	r.Use(b.record)
	r.Use(b.failures)
	r.Group(func(r chi.Router) {
		r.Use(b.requireCSRF)
		r.Post("/update_item/", b.updateItem)
		r.Post("/remove_item/", b.removeItem)
		r.Post("/get_shipping_infos/", b.shippingInfos)
	})
	r.Get("/load_credit_card_installments/", b.installments)
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := Call{
			Method:    r.Method,
			Path:      r.URL.Path,
			CSRFToken: r.Header.Get(storeapi.HeaderCSRFToken),
			Query:     r.URL.RawQuery,
		}
		if cookie, err := r.Cookie(storeapi.CookieDevice); err == nil {
			call.Device = cookie.Value
		}
		if r.Body != nil && r.ContentLength != 0 {
			var body map[string]any
			if err := render.DecodeJSON(r.Body, &body); err == nil {
				call.Body = body
			}
		}
		b.mu.Lock()
		b.calls = append(b.calls, call)
		b.mu.Unlock()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxCall, call)))
	})
}

func (b *Backend) failures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		fail := b.fail
		b.mu.Unlock()
		if fail {
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "internal server error")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetFail makes every route return a 500 while fail is set.
func (b *Backend) SetFail(fail bool) {
	b.mu.Lock()
	b.fail = fail
	b.mu.Unlock()
}

// The double-submit check the backend framework performs: header and cookie must match.
func (b *Backend) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(storeapi.CookieCSRFToken)
		header := r.Header.Get(storeapi.HeaderCSRFToken)
		if err != nil || header != b.Token || cookie.Value != b.Token {
			render.Status(r, http.StatusForbidden)
			render.PlainText(w, r, "CSRF verification failed")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type contextKey uint

const ctxCall contextKey = iota

func callFrom(r *http.Request) Call {
	call, _ := r.Context().Value(ctxCall).(Call)
	return call
}

func (b *Backend) updateItem(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, "Item was added")
}

func (b *Backend) removeItem(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, "Item was removed")
}

func (b *Backend) shippingInfos(w http.ResponseWriter, r *http.Request) {
	call := callFrom(r)
	if _, ok := call.Body["zip_code"].(string); !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "zip_code is required"})
		return
	}
	render.JSON(w, r, b.Shipping)
}

func (b *Backend) installments(w http.ResponseWriter, r *http.Request) {
	total, err := core.ParseMoney(r.URL.Query().Get("total"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := installmentOptions(total).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

const maxInstallments = 6

// Installment options without interest, the same fragment the backend renders.
func installmentOptions(total core.Money) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for i := 1; i <= maxInstallments; i++ {
			installment := core.Money((int64(total) + int64(i) - 1) / int64(i))
			label := fmt.Sprintf("%dx de %s sem juros", i, installment.Format())
			if _, err := fmt.Fprintf(
				w,
				"<option value=\"%s\">%s</option>\n",
				templ.EscapeString(strconv.Itoa(i)),
				templ.EscapeString(label),
			); err != nil {
				return err
			}
		}
		return nil
	})
}
