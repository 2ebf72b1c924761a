package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/prior-it/storefront/bootstrap"
	"github.com/prior-it/storefront/config"
	"github.com/spf13/cobra"
)

var errNoStore = errors.New("no store backend configured, set STORE_URL and STORE_CSRFTOKEN")

// globalState is shared by every command.
type globalState struct {
	Stdout io.Writer
	Stderr io.Writer
	// ConfigFS is where config.toml is looked up
	ConfigFS fs.FS
	Debug    bool
}

func newGlobalState() *globalState {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &globalState{
		Stdout:   color.Output,
		Stderr:   color.Error,
		ConfigFS: os.DirFS(cwd),
	}
}

// storefront loads the configuration and bootstraps the components, logging to logOutput.
func (gs *globalState) storefront(logOutput io.Writer) (*bootstrap.Storefront, error) {
	cfg, err := config.Load(gs.ConfigFS)
	if err != nil {
		return nil, err
	}
	if gs.Debug {
		cfg.App.Debug = true
	}
	return bootstrap.New(cfg, logOutput)
}

func (gs *globalState) printError(err error) {
	fmt.Fprintln(gs.Stderr, color.RedString("error: %v", err))
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront address form and cart tools",
		Long:          "Look up brazilian postal codes, quote shipping and manage the cart of the store backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&gs.Debug, "debug", "d", false, "enable debug logging")
	root.SetOut(gs.Stdout)
	root.SetErr(gs.Stderr)

	root.AddCommand(
		getCmdForm(gs),
		getCmdLookup(gs),
		getCmdShipping(gs),
		getCmdCart(gs),
		getCmdInstallments(gs),
		getCmdCheckout(gs),
		getCmdVersion(gs),
	)

	return root
}
