package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/prior-it/storefront/core"
)

const pathShippingInfos = "/get_shipping_infos/"

type shippingInfosRequest struct {
	ZipCode string `json:"zip_code"`
}

// ShippingInfos requests the shipping options for the specified postal code.
// Options that the Correios could not quote are returned as well, check ShippingOption.Failed.
func (c *Client) ShippingInfos(ctx context.Context, code core.PostalCode) ([]core.ShippingOption, error) {
	req, err := c.newRequest(
		ctx,
		http.MethodPost,
		c.endpoint(pathShippingInfos, nil),
		shippingInfosRequest{ZipCode: code.String()},
	)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var options []core.ShippingOption
	if err := render.DecodeJSON(resp.Body, &options); err != nil {
		return nil, fmt.Errorf("cannot decode shipping options: %w", err)
	}
	return options, nil
}
