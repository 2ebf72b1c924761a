package main

import (
	"fmt"

	"github.com/prior-it/storefront/core"
	"github.com/spf13/cobra"
)

func getCmdInstallments(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:     "installments <total>",
		Short:   "List the credit card installments for an order total",
		Example: "  storefront installments \"R$ 1.234,56\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := core.ParseMoney(args[0])
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

			installments, err := sf.Store.Installments(cmd.Context(), total)
			if err != nil {
				return err
			}
			printInstallments(gs, installments.Options)
			return nil
		},
	}
}

func printInstallments(gs *globalState, installments []core.Installment) {
	for _, installment := range installments {
		fmt.Fprintf(gs.Stdout, "%2d  %s\n", installment.Count, installment.Label)
	}
}
