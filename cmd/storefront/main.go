// Command storefront is the terminal front-end of the storefront: an interactive address form plus
// commands for postal code lookups, shipping quotes, cart updates and installments.
package main

import (
	"context"
	"os"
)

func main() {
	gs := newGlobalState()
	if err := newRootCommand(gs).ExecuteContext(context.Background()); err != nil {
		gs.printError(err)
		os.Exit(1)
	}
}
