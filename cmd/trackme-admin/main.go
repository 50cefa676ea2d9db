package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/pkg/config"
	"github.com/noah-isme/trackme-api/pkg/database"
	"github.com/noah-isme/trackme-api/pkg/logger"
)

var CLI struct {
	Version kong.VersionFlag

	Migrate MigrateCmd `cmd:"" help:"Apply pending database migrations."`
	Status  StatusCmd  `cmd:"" help:"Show the current schema version."`
	Seed    SeedCmd    `cmd:"" help:"Create the default user, subjects and habits."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trackme-admin"),
		kong.Description("Maintenance commands for the TrackMe database"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	appCtx := &Context{Config: cfg, DB: db, Logger: logr, Out: os.Stdout}
	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
