package main

import (
	"os"

	"github.com/katalvlaran/cplane/cmd/cplane/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
