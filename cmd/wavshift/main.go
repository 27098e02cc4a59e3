package main

import (
	"os"

	"github.com/ik5/wavshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
