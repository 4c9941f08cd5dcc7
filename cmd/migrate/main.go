package main

import (
	"flag"
	"fmt"
	"os"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/database"
	"podcast-quiz/internal/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down [--all]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	downFlags := flag.NewFlagSet("down", flag.ExitOnError)
	all := downFlags.Bool("all", false, "roll back every migration")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, cfg.DB.Driver)

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
		fmt.Println("Migrations applied successfully!")
	case "down":
		_ = downFlags.Parse(os.Args[2:])
		if err := migrator.Down(*all); err != nil {
			l.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		if *all {
			fmt.Println("Successfully rolled back all migrations")
		} else {
			fmt.Println("Successfully rolled back 1 migration(s)")
		}
	default:
		usage()
		os.Exit(2)
	}
}
