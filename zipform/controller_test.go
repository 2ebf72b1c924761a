package zipform_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/tests"
	"github.com/prior-it/storefront/viacep"
	"github.com/prior-it/storefront/zipform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// directory answers lookups from a map, unknown postal codes are not found.
type directory struct {
	mu        sync.Mutex
	addresses map[string]core.Address
	err       error
	calls     []string
}

func (d *directory) Lookup(_ context.Context, code core.PostalCode) (*core.Address, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, code.String())
	if d.err != nil {
		return nil, d.err
	}
	address, ok := d.addresses[code.String()]
	if !ok {
		return nil, &core.LookupFailure{PostalCode: code}
	}
	return &address, nil
}

func (d *directory) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func newDirectory(addresses ...core.Address) *directory {
	d := &directory{addresses: map[string]core.Address{}}
	for _, address := range addresses {
		d.addresses[address.PostalCode.String()] = address
	}
	return d
}

func TestTrigger(t *testing.T) {
	t.Run("ok: formatted postal code", func(t *testing.T) {
		code, ok := zipform.Trigger("01310-100")
		assert.True(t, ok)
		assert.Equal(t, "01310100", code.String())
	})

	t.Run("ok: any separator", func(t *testing.T) {
		code, ok := zipform.Trigger("01310 100")
		assert.True(t, ok)
		assert.Equal(t, "01310100", code.String())
	})

	for _, raw := range []string{"", "0131", "01310-10", "01310100", "01310-1000", "0131a-100", "abcde-fgh"} {
		t.Run(fmt.Sprintf("err: %q does not trigger", raw), func(t *testing.T) {
			_, ok := zipform.Trigger(raw)
			assert.False(t, ok)
		})
	}
}

func TestKeyUp(t *testing.T) {
	t.Run("ok: incomplete input leaves the form alone", func(t *testing.T) {
		dir := newDirectory()
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		for _, raw := range []string{"0", "01310", "01310-", "01310-10", "01310-1000"} {
			assert.Nil(t, controller.KeyUp(raw))
		}
		assert.Equal(t, zipform.VisibilityInitial, controller.Form().Visibility)
		assert.True(t, doc.IsHidden(zipform.IDLoader))
		assert.Empty(t, dir.Calls())
	})

	t.Run("ok: complete input resets the form before the lookup", func(t *testing.T) {
		dir := newDirectory()
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		pending := controller.KeyUp("01310-100")
		require.NotNil(t, pending)
		assert.Equal(t, "01310100", pending.PostalCode().String())
		assert.Equal(t, zipform.VisibilityLoading, controller.Form().Visibility)
		assert.False(t, doc.IsHidden(zipform.IDLoader))
		assert.False(t, doc.IsHidden(zipform.IDLoadingText))
		assertSectionsHidden(t, doc, true)
		// Nothing is fetched until the caller asks for it
		assert.Empty(t, dir.Calls())
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: found address is rendered", func(t *testing.T) {
		address := tests.Address(tests.PostalCode())
		dir := newDirectory(address)
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		pending := controller.KeyUp(address.PostalCode.Formatted())
		require.NotNil(t, pending)
		form, applied := controller.Apply(pending.Fetch(ctx))

		assert.True(t, applied)
		assert.Equal(t, zipform.VisibilityFound, form.Visibility)
		assert.Equal(t, []string{address.PostalCode.String()}, dir.Calls())
		assert.Equal(t, address.Street, doc.Value(zipform.IDStreet))
		assert.Equal(t, address.City, doc.Value(zipform.IDCity))
		assertOnlySelected(t, doc, string(address.State))
		assertSectionsHidden(t, doc, false)
	})

	t.Run("ok: unknown postal code shows the error", func(t *testing.T) {
		var reported []error
		dir := newDirectory()
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc).WithErrorReporter(func(err error) {
			reported = append(reported, err)
		})

		form, applied := controller.Apply(controller.KeyUp("99999-999").Fetch(ctx))

		assert.True(t, applied)
		assert.Equal(t, zipform.VisibilityFailed, form.Visibility)
		assert.Equal(t, zipform.FailureNotFound, form.Reason)
		assert.ErrorIs(t, form.Err, core.ErrPostalCodeNotFound)
		assert.False(t, doc.IsHidden(zipform.IDError))
		assert.True(t, doc.IsHidden(zipform.IDLoader))
		assertSectionsHidden(t, doc, true)
		assert.Empty(t, reported)
	})

	t.Run("ok: transport failure hides the loader and is reported", func(t *testing.T) {
		var reported []error
		errOffline := errors.New("offline")
		dir := newDirectory()
		dir.err = errOffline
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc).WithErrorReporter(func(err error) {
			reported = append(reported, err)
		})

		form, applied := controller.Apply(controller.KeyUp("01310-100").Fetch(ctx))

		assert.True(t, applied)
		assert.Equal(t, zipform.VisibilityFailed, form.Visibility)
		assert.Equal(t, zipform.FailureTransport, form.Reason)
		assert.True(t, doc.IsHidden(zipform.IDLoader))
		assert.True(t, doc.IsHidden(zipform.IDLoadingText))
		assert.False(t, doc.IsHidden(zipform.IDError))
		assertSectionsHidden(t, doc, true)
		require.Len(t, reported, 1)
		assert.ErrorIs(t, reported[0], errOffline)
	})

	t.Run("ok: stale outcome is discarded", func(t *testing.T) {
		first := tests.Address(tests.PostalCode())
		second := tests.Address(tests.PostalCode())
		second.State = "RS"
		first.State = "AM"
		dir := newDirectory(first, second)
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		older := controller.KeyUp(first.PostalCode.Formatted())
		newer := controller.KeyUp(second.PostalCode.Formatted())

		form, applied := controller.Apply(newer.Fetch(ctx))
		assert.True(t, applied)
		assert.Equal(t, second.Street, form.Address.Street)

		form, applied = controller.Apply(older.Fetch(ctx))
		assert.False(t, applied)
		assert.Equal(t, zipform.VisibilityFound, form.Visibility)
		assert.Equal(t, second.Street, doc.Value(zipform.IDStreet))
		assertOnlySelected(t, doc, "RS")
	})

	t.Run("ok: outcome of a superseded lookup does not end the loading state", func(t *testing.T) {
		dir := newDirectory()
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		older := controller.KeyUp("11111-111")
		controller.KeyUp("22222-222")

		_, applied := controller.Apply(older.Fetch(ctx))
		assert.False(t, applied)
		assert.Equal(t, zipform.VisibilityLoading, controller.Form().Visibility)
		assert.False(t, doc.IsHidden(zipform.IDLoader))
		assert.True(t, doc.IsHidden(zipform.IDError))
	})
}

func TestHandleKeyUp(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("ok: lookup resolves in the background", func(t *testing.T) {
		address := tests.Address(tests.PostalCode())
		dir := newDirectory(address)
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		assert.False(t, controller.HandleKeyUp(context.Background(), "0131"))
		assert.True(t, controller.HandleKeyUp(context.Background(), address.PostalCode.Formatted()))
		controller.Wait()

		assert.Equal(t, zipform.VisibilityFound, controller.Form().Visibility)
		assert.Equal(t, address.Street, doc.Value(zipform.IDStreet))
	})

	t.Run("ok: only the latest of many lookups wins", func(t *testing.T) {
		addresses := make([]core.Address, 10)
		for i := range addresses {
			addresses[i] = tests.Address(tests.PostalCode())
		}
		dir := newDirectory(addresses...)
		doc := zipform.NewDocument()
		controller := zipform.New(dir, doc)

		for _, address := range addresses {
			controller.HandleKeyUp(context.Background(), address.PostalCode.Formatted())
		}
		controller.Wait()

		last := addresses[len(addresses)-1]
		form := controller.Form()
		require.Equal(t, zipform.VisibilityFound, form.Visibility)
		assert.Equal(t, last.PostalCode, form.PostalCode)
		assert.Equal(t, last.Street, doc.Value(zipform.IDStreet))
	})
}

func TestControllerWithDirectory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ws/01310100/json/":
			fmt.Fprint(w, `{"cep":"01310-100","logradouro":"Av. Paulista","complemento":"",`+
				`"bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`)
		default:
			fmt.Fprint(w, `{"erro": true}`)
		}
	}))
	defer server.Close()
	client := viacep.New().WithBaseURL(server.URL + "/ws").WithHTTPClient(server.Client())

	t.Run("ok: known postal code", func(t *testing.T) {
		doc := zipform.NewDocument()
		controller := zipform.New(client, doc)

		form, _ := controller.Apply(controller.KeyUp("01310-100").Fetch(context.Background()))

		assert.Equal(t, zipform.VisibilityFound, form.Visibility)
		assert.Equal(t, "Av. Paulista", doc.Value(zipform.IDStreet))
		assert.Equal(t, "Bela Vista", doc.Value(zipform.IDNeighborhood))
		assert.Equal(t, "São Paulo", doc.Value(zipform.IDCity))
		assertOnlySelected(t, doc, "SP")
		assertSectionsHidden(t, doc, false)
	})

	t.Run("ok: unknown postal code", func(t *testing.T) {
		doc := zipform.NewDocument()
		controller := zipform.New(client, doc)

		form, _ := controller.Apply(controller.KeyUp("00000-000").Fetch(context.Background()))

		assert.Equal(t, zipform.VisibilityFailed, form.Visibility)
		assert.Equal(t, zipform.FailureNotFound, form.Reason)
		assert.False(t, doc.IsHidden(zipform.IDError))
		assertSectionsHidden(t, doc, true)
	})
}
