// Command domhost inspects and exercises the DOM host renderer from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/domhost/cmd/domhost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
