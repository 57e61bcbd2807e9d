// Command neoui previews the widget kit from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cgsoftware/neoui/cmd/neoui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
