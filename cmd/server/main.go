package main

import (
	"os"

	"github.com/mcoot/imposter/internal/cli"
)

func main() {
	cmd := cli.NewServeCmd()
	cmd.Use = "imposter-server"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
