// Command s4lift rewrites obsolete SAP MM-IM table references to their
// S/4HANA replacements.
package main

import (
	"os"

	"github.com/s4lift/s4lift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
