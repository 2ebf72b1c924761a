package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/prior-it/storefront/core"
)

const (
	pathUpdateItem = "/update_item/"
	pathRemoveItem = "/remove_item/"
)

type updateItemRequest struct {
	ProductID string          `json:"productId"`
	Action    core.CartAction `json:"action"`
	Quantity  int             `json:"quantity"`
}

type removeItemRequest struct {
	ProductID string `json:"productId"`
}

// UpdateItem asks the backend to apply action to the cart item of the specified product.
// The response body is only logged, the backend is the source of truth for the cart.
func (c *Client) UpdateItem(
	ctx context.Context,
	productID core.ProductID,
	action core.CartAction,
	quantity int,
) error {
	return c.mutateCart(ctx, pathUpdateItem, updateItemRequest{
		ProductID: productID.String(),
		Action:    action,
		Quantity:  quantity,
	})
}

// RemoveItem asks the backend to drop the product from the cart.
func (c *Client) RemoveItem(ctx context.Context, productID core.ProductID) error {
	return c.mutateCart(ctx, pathRemoveItem, removeItemRequest{ProductID: productID.String()})
}

func (c *Client) mutateCart(ctx context.Context, path string, body any) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint(path, nil), body)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var data any
	if err := render.DecodeJSON(resp.Body, &data); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", path, err)
	}
	c.logger.Debug("Cart updated", "path", path, "data", data)
	return nil
}
