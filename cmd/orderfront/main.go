package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/riloidx/orderfront/internal/front/app"
	"github.com/riloidx/orderfront/internal/front/view"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := view.NewRenderer(os.Stdout, os.Stderr)
	if err := application.Run(ctx, os.Args[1:], renderer); err != nil {
		// The renderer has already shown the user-facing message.
		os.Exit(1)
	}
}
