package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"invoicegen/internal/api"
	"invoicegen/internal/cli"
	"invoicegen/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		API:    api.NewClient(&cfg.API),
		Styles: cli.NewStyles(cfg.Output.NoColor),
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	return cli.NewRootCmd(app).Execute()
}
