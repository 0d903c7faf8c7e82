package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"newshub/database"
	"newshub/internal/config"
	"newshub/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	if err := seed.Run(context.Background(), db, logger); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
