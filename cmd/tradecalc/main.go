package main

import (
	"os"

	"github.com/rustyeddy/tradecalc/cmd/tradecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
