package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/widgets"
	"github.com/spf13/cobra"
)

type cartCmd struct {
	gs       *globalState
	quantity int
}

// buttons prepares the cart buttons of a page that only has the quantity input of productID.
func (c *cartCmd) buttons(productID core.ProductID) (*widgets.CartButtons, func(), error) {
	sf, err := c.gs.storefront(c.gs.Stderr)
	if err != nil {
		return nil, nil, err
	}
	if sf.Store == nil {
		sf.Close()
		return nil, nil, errNoStore
	}

	doc := dom.New()
	if c.quantity > 0 {
		doc.Add(&dom.Element{ID: widgets.QuantityID(productID), Value: fmt.Sprint(c.quantity)})
	}
	location := &dom.Location{OnReload: func() {
		fmt.Fprintln(c.gs.Stdout, color.GreenString("Cart updated"))
	}}
	buttons := widgets.NewCartButtons(sf.Store, doc, location).WithLogger(sf.Logger)
	return buttons, sf.Close, nil
}

func (c *cartCmd) update(action core.CartAction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		productID, err := core.ParseProductID(args[0])
		if err != nil {
			return err
		}
		buttons, done, err := c.buttons(productID)
		if err != nil {
			return err
		}
		defer done()
		return buttons.Update(cmd.Context(), productID, action)
	}
}

func (c *cartCmd) remove(cmd *cobra.Command, args []string) error {
	productID, err := core.ParseProductID(args[0])
	if err != nil {
		return err
	}
	buttons, done, err := c.buttons(productID)
	if err != nil {
		return err
	}
	defer done()
	return buttons.Remove(cmd.Context(), productID)
}

func getCmdCart(gs *globalState) *cobra.Command {
	c := &cartCmd{gs: gs}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Update the cart on the store backend",
	}
	cmd.PersistentFlags().IntVarP(&c.quantity, "quantity", "q", 0, "quantity to send, 1 when not set")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <product>",
			Short: "Add a product to the cart",
			Args:  cobra.ExactArgs(1),
			RunE:  c.update(core.CartActionAdd),
		},
		&cobra.Command{
			Use:   "remove <product>",
			Short: "Decrease the quantity of a product in the cart",
			Args:  cobra.ExactArgs(1),
			RunE:  c.update(core.CartActionRemove),
		},
		&cobra.Command{
			Use:   "delete <product>",
			Short: "Remove a product from the cart",
			Args:  cobra.ExactArgs(1),
			RunE:  c.remove,
		},
	)
	return cmd
}
