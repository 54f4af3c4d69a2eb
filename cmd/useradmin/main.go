package main

import (
	"context"
	"log"
	"os"

	"github.com/dmaltsev/journal/internal/server/config"
	"github.com/dmaltsev/journal/internal/server/repositories/repomanager"
	"github.com/dmaltsev/journal/internal/server/services"
	"github.com/dmaltsev/journal/internal/useradmin"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := repomanager.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Printf("db init error: %v", err)
		return
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Printf("migration error: %v", err)
		return
	}

	us := services.NewUserService(db, rm, cfg)

	app := useradmin.NewApp(us, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
