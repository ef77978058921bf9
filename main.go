// Command benchkit is the electronics bench toolkit: calculators, a design
// review checklist and a light/dark theme, in the terminal or the browser.
package main

import (
	"os"

	"github.com/idilsaglam/benchkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
