package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/William0209/backend-last/internal/client/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, cli.NewHTTPClientFactory)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
