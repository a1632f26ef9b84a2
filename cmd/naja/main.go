package main

import (
	"os"

	"github.com/kievzenit/naja/cmd/naja/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
