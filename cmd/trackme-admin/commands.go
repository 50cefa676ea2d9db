package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/repository"
	"github.com/noah-isme/trackme-api/internal/service"
	"github.com/noah-isme/trackme-api/pkg/config"
	"github.com/noah-isme/trackme-api/pkg/database"
)

// Context carries shared dependencies into every command.
type Context struct {
	Config *config.Config
	DB     *sqlx.DB
	Logger *zap.Logger
	Out    io.Writer
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	applied, err := database.NewMigrator(ctx.DB, ctx.Logger).Up(context.Background())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if applied == 0 {
		fmt.Fprintln(ctx.Out, "Database is up to date.")
		return nil
	}
	fmt.Fprintf(ctx.Out, "Applied %d migration(s).\n", applied)
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	migrator := database.NewMigrator(ctx.DB, ctx.Logger)
	current, err := migrator.CurrentVersion(context.Background())
	if err != nil {
		return err
	}
	migrations, err := migrator.Migrations()
	if err != nil {
		return err
	}
	latest := 0
	if n := len(migrations); n > 0 {
		latest = migrations[n-1].Version
	}
	fmt.Fprintf(ctx.Out, "Schema version %d of %d (%s).\n", current, latest, ctx.Config.Database.Driver)
	return nil
}

type SeedCmd struct {
	Username string `help:"Username to seed; defaults to DEFAULT_USERNAME."`
}

func (c *SeedCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := database.NewMigrator(ctx.DB, ctx.Logger).Up(bg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	username := c.Username
	if username == "" {
		username = ctx.Config.DefaultUsername
	}

	seeder := service.NewSeedService(
		repository.NewUserRepository(ctx.DB),
		repository.NewSubjectRepository(ctx.DB),
		repository.NewHabitRepository(ctx.DB),
		ctx.Logger,
	)
	result, err := seeder.Seed(bg, username)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Seeded user %q (%s)\n", result.User.Username, result.User.ID)
	fmt.Fprintf(ctx.Out, "  subjects: %d created, %d already present\n", len(result.SubjectsCreated), len(result.SubjectsSkipped))
	if len(result.SubjectsCreated) > 0 {
		fmt.Fprintf(ctx.Out, "    + %s\n", strings.Join(result.SubjectsCreated, ", "))
	}
	fmt.Fprintf(ctx.Out, "  habits: %d created, %d already present\n", len(result.HabitsCreated), len(result.HabitsSkipped))
	if len(result.HabitsCreated) > 0 {
		fmt.Fprintf(ctx.Out, "    + %s\n", strings.Join(result.HabitsCreated, ", "))
	}
	return nil
}
