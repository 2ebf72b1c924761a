package zipform

import (
	"github.com/prior-it/storefront/core"
)

// Visibility is the state of the address form. It decides which sections of the form are shown.
type Visibility int

const (
	// VisibilityInitial is the form as it was rendered by the server, before any lookup.
	VisibilityInitial Visibility = iota
	// VisibilityLoading hides every section while a lookup is pending.
	VisibilityLoading
	// VisibilityFound shows every section, pre-filled with the lookup result.
	VisibilityFound
	// VisibilityFailed shows the error message and keeps the sections hidden.
	VisibilityFailed
)

func (v Visibility) String() string {
	switch v {
	case VisibilityInitial:
		return "initial"
	case VisibilityLoading:
		return "loading"
	case VisibilityFound:
		return "found"
	case VisibilityFailed:
		return "failed"
	}
	return "unknown"
}

// SectionsVisible returns true if the address sections and buttons are shown in this state.
func (v Visibility) SectionsVisible() bool {
	return v == VisibilityFound
}

// FailureReason tells why a lookup failed.
type FailureReason int

const (
	FailureNone FailureReason = iota
	// FailureNotFound means the directory does not know the postal code
	FailureNotFound
	// FailureTransport means the directory could not be reached
	FailureTransport
)

// Form is the explicit state of the address form.
type Form struct {
	Visibility Visibility
	PostalCode core.PostalCode
	// Address is only set when Visibility is VisibilityFound
	Address *core.Address
	Reason  FailureReason
	Err     error
}
