package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/prior-it/storefront/core"
	"github.com/spf13/cobra"
)

func getCmdShipping(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:     "shipping <cep>",
		Short:   "Quote the shipping services for a postal code",
		Example: "  storefront shipping 01310-100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := core.ParsePostalCode(args[0])
			if err != nil {
				return err
			}
			sf, err := gs.storefront(gs.Stderr)
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
			printShippingOptions(gs, options)
			return nil
		},
	}
}

func printShippingOptions(gs *globalState, options []core.ShippingOption) {
	name := color.New(color.Bold).SprintFunc()
	for _, option := range options {
		service := name(fmt.Sprintf("%-6s", core.ShippingServiceName(option.ServiceCode)))
		if option.Failed() {
			fmt.Fprintf(gs.Stdout, "%s %s\n", service, color.RedString(option.ErrorText()))
			continue
		}
		amount, err := option.Amount()
		if err != nil {
			fmt.Fprintf(gs.Stdout, "%s %s\n", service, color.RedString(err.Error()))
			continue
		}
		days, err := option.Days()
		if err != nil {
			fmt.Fprintf(gs.Stdout, "%s %s\n", service, amount.Format())
			continue
		}
		fmt.Fprintf(gs.Stdout, "%s %s em até %d dias úteis\n", service, amount.Format(), days)
	}
}
