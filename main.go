package main

import (
	"os"

	"github.com/techwell/techwell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
