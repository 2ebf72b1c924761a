package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/widgets"
	"github.com/spf13/cobra"
)

type checkoutCmd struct {
	gs      *globalState
	service string
	cash    string
}

func (c *checkoutCmd) run(cmd *cobra.Command, args []string) error {
	code, err := core.ParsePostalCode(args[0])
	if err != nil {
		return err
	}
	cartTotal, err := core.ParseMoney(args[1])
	if err != nil {
		return err
	}
	cashTotal := cartTotal
	if len(c.cash) > 0 {
		if cashTotal, err = core.ParseMoney(c.cash); err != nil {
			return err
		}
	}

	sf, err := c.gs.storefront(c.gs.Stderr)
	if err != nil {
		return err
	}
	defer sf.Close()
	if sf.Store == nil {
		return errNoStore
	}

	options, err := sf.Store.ShippingInfos(cmd.Context(), code)
	if err != nil {
		return err
	}
	printShippingOptions(c.gs, options)

	doc := dom.New()
	doc.Add(&dom.Element{ID: widgets.IDTotalText})
	doc.Add(&dom.Element{ID: widgets.IDTotalDiscountedText})
	doc.Add(&dom.Element{ID: widgets.IDCreditCardInstallments})
	widgets.AddShippingOptions(doc, options)

	totals := widgets.NewTotals(doc, sf.Store, cartTotal, cashTotal).WithLogger(sf.Logger)
	if _, err := totals.SelectShipping(cmd.Context(), c.service); err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(c.gs.Stdout)
	fmt.Fprintf(c.gs.Stdout, "%s %s\n", bold("Total:        "), doc.Element(widgets.IDTotalText).Text)
	fmt.Fprintf(c.gs.Stdout, "%s %s\n", bold("Total à vista:"), doc.Element(widgets.IDTotalDiscountedText).Text)
	return nil
}

func getCmdCheckout(gs *globalState) *cobra.Command {
	c := &checkoutCmd{gs: gs}

	cmd := &cobra.Command{
		Use:     "checkout <cep> <cart total>",
		Short:   "Compute the order totals for a shipping service",
		Example: "  storefront checkout 01310-100 \"R$ 100,00\" --cash \"R$ 90,00\" --service 04510",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		RunE:    c.run,
	}
	cmd.Flags().StringVarP(&c.service, "service", "s", core.ServiceSEDEX, "Correios service code")
	cmd.Flags().StringVar(&c.cash, "cash", "", "discounted cart total for cash payments, the cart total when not set")
	return cmd
}
