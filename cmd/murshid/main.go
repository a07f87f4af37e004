// Command murshid answers questions about a single Arabic document.
package main

import (
	"os"

	"github.com/custodia-labs/murshid/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
