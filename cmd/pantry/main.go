package main

import (
	"os"

	"github.com/aussiebroadwan/pantry/internal/pantry/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
