package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/William0209/backend-last/internal/server"
	"github.com/William0209/backend-last/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
