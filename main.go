package main

import (
	"os"

	"github.com/kdiallo/rianterm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
