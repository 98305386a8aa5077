// Command migrate applies or rolls back the database schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/groupchat/internal/config"
	"github.com/fkhayef/groupchat/internal/database"
	"github.com/fkhayef/groupchat/internal/logging"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	if err := run(*down); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(down bool) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}

	mg, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer mg.Close()

	if down {
		return mg.Down()
	}
	return mg.Up()
}
