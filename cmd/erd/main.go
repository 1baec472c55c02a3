package main

import (
	"os"

	"github.com/davechallis/erd-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
