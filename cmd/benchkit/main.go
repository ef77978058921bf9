package main

import (
	"os"

	"github.com/idilsaglam/benchkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
