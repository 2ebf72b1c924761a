package widgets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
)

// CartDropDownHash keeps the cart drop down open after the page reloads.
const CartDropDownHash = "showCartDropDown=true"

// QuantityID returns the id of the quantity input of a product.
func QuantityID(productID core.ProductID) string {
	return "product-quantity-" + productID.String()
}

// Cart mutates the cart on the store backend.
type Cart interface {
	UpdateItem(ctx context.Context, productID core.ProductID, action core.CartAction, quantity int) error
	RemoveItem(ctx context.Context, productID core.ProductID) error
}

// CartButtons handles the "update-cart" and remove buttons of the product and cart pages.
type CartButtons struct {
	cart     Cart
	doc      *dom.Document
	location *dom.Location
	logger   *slog.Logger
}

func NewCartButtons(cart Cart, doc *dom.Document, location *dom.Location) *CartButtons {
	return &CartButtons{
		cart:     cart,
		doc:      doc,
		location: location,
		logger:   slog.Default(),
	}
}

func (b *CartButtons) WithLogger(logger *slog.Logger) *CartButtons {
	b.logger = logger
	return b
}

// Quantity returns the quantity entered for a product, or 1 if the page has no quantity input for
// it. An empty input counts as 0.
func (b *CartButtons) Quantity(productID core.ProductID) (int, error) {
	input := b.doc.Element(QuantityID(productID))
	if input == nil {
		return 1, nil
	}
	value := strings.TrimSpace(input.Value)
	if len(value) == 0 {
		return 0, nil
	}
	quantity, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Join(ErrInvalidQuantity, fmt.Errorf("cannot parse %q: %w", value, err))
	}
	return quantity, nil
}

// Update applies action to the cart item of the product, then reloads the page with the cart drop
// down open. The page is reloaded even if the backend call failed, it always shows the cart as the
// backend knows it.
func (b *CartButtons) Update(ctx context.Context, productID core.ProductID, action core.CartAction) error {
	b.location.SetHash(CartDropDownHash)
	quantity, err := b.Quantity(productID)
	if err != nil {
		// Rejected before any request, so there is no cart change to reload
		return err
	}

	defer b.location.Reload()
	if err := b.cart.UpdateItem(ctx, productID, action, quantity); err != nil {
		b.logger.Error(
			"Cannot update cart item",
			"product_id", productID.String(),
			"action", action,
			"error", err,
		)
		return err
	}
	return nil
}

// Remove drops the product from the cart, then reloads the page with the cart drop down open.
func (b *CartButtons) Remove(ctx context.Context, productID core.ProductID) error {
	b.location.SetHash(CartDropDownHash)

	defer b.location.Reload()
	if err := b.cart.RemoveItem(ctx, productID); err != nil {
		b.logger.Error("Cannot remove cart item", "product_id", productID.String(), "error", err)
		return err
	}
	return nil
}
