package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBookingService/internal/config"
	"github.com/m04kA/SMC-StudioBookingService/internal/infra/migrations"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
)

// Запуск: migrate -config config.toml [up|down|version]
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}

	ctx := context.Background()
	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "version":
		var version int64
		version, err = migrator.Version(ctx)
		if err == nil {
			log.Info("Current schema version: %d", version)
		}
	default:
		log.Fatal("Unknown command %q, expected up, down or version", command)
	}

	if err != nil {
		log.Fatal("Migration command %s failed: %v", command, err)
	}
}
