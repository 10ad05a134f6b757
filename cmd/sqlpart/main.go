// Command sqlpart renders and runs declarative SQL statement documents.
package main

import (
	"os"

	"github.com/zoobzio/sqlpart/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
