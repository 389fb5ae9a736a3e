package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recipe-share-backend/cmd/config"
	migration "recipe-share-backend/cmd/database/migrate"
	"recipe-share-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, snapshotService, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	// Reload the last snapshot, if one exists, before serving traffic.
	if err := snapshotService.Import(context.Background()); err != nil {
		log.Fatalf("failed to import snapshot: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down")

	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	// One final snapshot so the export file reflects the closing state.
	if _, err := snapshotService.Export(context.Background()); err != nil {
		log.Printf("failed to export snapshot: %v", err)
	}
}
