package main

import (
	"os"

	"github.com/MegaNoam/CitizensCMD/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
