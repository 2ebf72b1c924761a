// Package widgets contains the small page behaviours of the storefront: the cart buttons, the
// product image slider and the order totals on the checkout page.
package widgets

import "errors"

var (
	ErrUnknownElement  = errors.New("element does not exist")
	ErrInvalidQuantity = errors.New("invalid quantity")
)
