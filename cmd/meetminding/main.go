package main

import (
	"os"

	"github.com/priyank-82/Meet-Minding/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
