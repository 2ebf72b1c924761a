package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionString(configured string) string {
	if len(configured) > 0 {
		return configured
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func getCmdVersion(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sf, err := gs.storefront(gs.Stderr)
			if err != nil {
				return err
			}
			defer sf.Close()
			_, err = fmt.Fprintf(gs.Stdout, "%s %s\n", sf.Config.App.Name, versionString(sf.Config.App.Version))
			return err
		},
	}
}
