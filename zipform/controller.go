// Package zipform drives the address form: when the customer finishes typing a postal code, the
// address is looked up and the form either reveals the pre-filled address fields or an error.
//
// The controller owns the form state. Lookups are fired by KeyUp and resolved by Apply, which may
// happen much later and in any order; only the outcome of the most recent lookup is rendered.
package zipform

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/prior-it/storefront/core"
)

// Lookup resolves postal codes. Unknown postal codes must return an error that matches
// core.ErrPostalCodeNotFound, any other error is treated as a transport failure.
type Lookup interface {
	Lookup(ctx context.Context, code core.PostalCode) (*core.Address, error)
}

// ErrorReporter receives transport failures, e.g. to forward them to an error tracker.
type ErrorReporter func(err error)

var errEmptyLookupResult = errors.New("lookup returned neither an address nor an error")

type Controller struct {
	lookup Lookup
	doc    Document
	logger *slog.Logger
	report ErrorReporter

	mu   sync.Mutex
	seq  uint64
	form Form
	wg   sync.WaitGroup
}

// New creates a controller that renders into doc.
func New(lookup Lookup, doc Document) *Controller {
	return &Controller{
		lookup: lookup,
		doc:    doc,
		logger: slog.Default(),
	}
}

func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	c.logger = logger
	return c
}

func (c *Controller) WithErrorReporter(report ErrorReporter) *Controller {
	c.report = report
	return c
}

// Pending is a lookup that has been fired but not resolved yet.
type Pending struct {
	lookup Lookup
	seq    uint64
	code   core.PostalCode
}

// Outcome is the result of a pending lookup, to be applied by the controller that fired it.
type Outcome struct {
	seq     uint64
	code    core.PostalCode
	address *core.Address
	err     error
}

func (o Outcome) PostalCode() core.PostalCode {
	return o.code
}

func (o Outcome) Err() error {
	return o.err
}

// Trigger returns the postal code to look up if raw is a complete postal code: exactly 9 characters
// that contain exactly 8 digits, e.g. "12345-678". Any other input does not trigger a lookup.
func Trigger(raw string) (core.PostalCode, bool) {
	if utf8.RuneCountInString(raw) != core.FormattedPostalCodeLength {
		return core.PostalCode{}, false
	}
	code, err := core.ParsePostalCode(raw)
	if err != nil {
		return core.PostalCode{}, false
	}
	return code, true
}

// KeyUp handles a key release on the postal code input with the current input value.
// If the value is a complete postal code, the form is reset to its loading state and the returned
// lookup must be fetched and applied. Otherwise this returns nil and nothing changes.
func (c *Controller) KeyUp(raw string) *Pending {
	code, ok := Trigger(raw)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.form = Form{Visibility: VisibilityLoading, PostalCode: code}
	Render(c.doc, c.form)
	c.logger.Debug("Postal code lookup fired", "postal_code", code.String(), "seq", c.seq)

	return &Pending{lookup: c.lookup, seq: c.seq, code: code}
}

// PostalCode returns the postal code that is being looked up.
func (p *Pending) PostalCode() core.PostalCode {
	return p.code
}

// Fetch performs the lookup. It does not touch the form and can run on any goroutine.
func (p *Pending) Fetch(ctx context.Context) Outcome {
	address, err := p.lookup.Lookup(ctx, p.code)
	if err == nil && address == nil {
		err = errEmptyLookupResult
	}
	return Outcome{seq: p.seq, code: p.code, address: address, err: err}
}

// Apply renders the outcome of a lookup. Outcomes of lookups that were superseded by a newer KeyUp
// are discarded; the returned bool reports whether the outcome was rendered.
func (c *Controller) Apply(outcome Outcome) (Form, bool) {
	c.mu.Lock()
	if outcome.seq != c.seq {
		c.logger.Debug(
			"Discarding stale postal code lookup",
			"postal_code", outcome.code.String(),
			"seq", outcome.seq,
			"latest", c.seq,
		)
		form := c.form
		c.mu.Unlock()
		return form, false
	}

	form := Form{PostalCode: outcome.code}
	var transportErr error
	switch {
	case outcome.err == nil:
		form.Visibility = VisibilityFound
		form.Address = outcome.address
	case errors.Is(outcome.err, core.ErrPostalCodeNotFound):
		form.Visibility = VisibilityFailed
		form.Reason = FailureNotFound
		form.Err = outcome.err
	default:
		// The loader must not stay on screen when the directory cannot be reached
		form.Visibility = VisibilityFailed
		form.Reason = FailureTransport
		form.Err = outcome.err
		transportErr = outcome.err
	}
	c.form = form
	Render(c.doc, form)
	c.mu.Unlock()

	if transportErr != nil {
		c.logger.Error(
			"Postal code lookup failed",
			"postal_code", outcome.code.String(),
			"error", transportErr,
		)
		if c.report != nil {
			c.report(transportErr)
		}
	}
	return form, true
}

// Form returns the current state of the form.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// HandleKeyUp is the fire-and-forget variant of KeyUp: the lookup is fetched and applied on its own
// goroutine. It returns true if a lookup was fired. The caller must serialise its own reads of the
// document with Wait or through the documents it passes in.
func (c *Controller) HandleKeyUp(ctx context.Context, raw string) bool {
	pending := c.KeyUp(raw)
	if pending == nil {
		return false
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.Apply(pending.Fetch(ctx))
	}()
	return true
}

// Wait blocks until every lookup fired by HandleKeyUp has been applied or discarded.
func (c *Controller) Wait() {
	c.wg.Wait()
}
