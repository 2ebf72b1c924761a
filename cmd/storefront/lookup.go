package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/prior-it/storefront/core"
	"github.com/spf13/cobra"
)

func getCmdLookup(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <cep>",
		Short:   "Look up the address of a postal code",
		Example: "  storefront lookup 01310-100",
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

			address, err := sf.Lookup.Lookup(cmd.Context(), code)
			var failure *core.LookupFailure
			if errors.As(err, &failure) {
				return fmt.Errorf("CEP %s não encontrado: %w", code.Formatted(), err)
			} else if err != nil {
				return err
			}
			printAddress(gs, address)
			return nil
		},
	}
}

func printAddress(gs *globalState, address *core.Address) {
	label := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(gs.Stdout, "%s %s\n", label("CEP:        "), address.PostalCode.Formatted())
	fmt.Fprintf(gs.Stdout, "%s %s\n", label("Endereço:   "), address.Street)
	fmt.Fprintf(gs.Stdout, "%s %s\n", label("Complemento:"), address.Complement)
	fmt.Fprintf(gs.Stdout, "%s %s\n", label("Bairro:     "), address.Neighborhood)
	fmt.Fprintf(gs.Stdout, "%s %s\n", label("Cidade:     "), address.City)
	fmt.Fprintf(gs.Stdout, "%s %s (%s)\n", label("UF:         "), address.State.Name(), address.State)
}
