package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/bookaapp/booka/internal/client/cli"
	"github.com/bookaapp/booka/internal/client/config"
	"github.com/bookaapp/booka/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
