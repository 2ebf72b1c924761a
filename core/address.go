package core

/**
 * DOMAIN
 */

// Address is the part of a shipping address that can be resolved from a postal code.
// Number and reference are always entered by the customer.
type Address struct {
	PostalCode   PostalCode
	Street       string
	Neighborhood string
	Complement   string
	City         string
	State        StateCode
}

// LookupFailure is returned by address lookups when the directory does not know the postal code.
// Code and Message are empty when the directory does not provide any details.
type LookupFailure struct {
	PostalCode PostalCode
	Code       string
	Message    string
}

func (f *LookupFailure) Error() string {
	if len(f.Message) > 0 {
		return "postal code " + f.PostalCode.Formatted() + " not found: " + f.Message
	}
	return "postal code " + f.PostalCode.Formatted() + " not found"
}

// Is makes every LookupFailure match ErrPostalCodeNotFound.
func (f *LookupFailure) Is(target error) bool {
	return target == ErrPostalCodeNotFound
}
