package main

import (
	"os"

	"github.com/mvillar/annokit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
