package main

import (
	"context"
	"fmt"
	"os"

	"ui_verification/presentation/cli"
)

func main() {
	app, err := cli.New(cli.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
