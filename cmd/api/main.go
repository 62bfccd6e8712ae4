package main

import (
	"log"

	"github.com/amconnect/assessment/api/internal/config"
	"github.com/amconnect/assessment/api/internal/infrastructure/sqlite"
	"github.com/amconnect/assessment/api/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		cfg.ServerLog.Fatalf("failed to open database: %v", err)
	}

	app := server.New(cfg, db)
	if err := app.Run(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
