package main

import (
	"os"

	"github.com/pathwise-ed/pathwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
