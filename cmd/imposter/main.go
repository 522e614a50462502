package main

import "github.com/mcoot/imposter/internal/cli"

func main() {
	cli.Execute()
}
