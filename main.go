package main

import (
	"os"

	"github.com/da-luce/cvlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
