package main

import (
	"context"
	"os"
)

var version = "dev"

func main() {
	deps := Dependencies{
		NewService: defaultService,
		Version:    version,
	}

	exitCode := Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
