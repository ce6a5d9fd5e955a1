package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/dal"
	"github.com/openpali/tipitaka-tools/internal/logging"
	"github.com/openpali/tipitaka-tools/internal/pipeline"
	"github.com/openpali/tipitaka-tools/internal/storage"
	"github.com/openpali/tipitaka-tools/internal/translit"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := cmd.String("db"); v != "" {
		cfg.DBPath = v
	}
	if v := cmd.String("target"); v != "" {
		cfg.TargetDir = v
	}
	if v := cmd.String("nav-file"); v != "" {
		cfg.NavFile = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if cmd.IsSet("max-level") {
		level := int(cmd.Int("max-level"))
		cfg.MaxLevel = &level
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := logging.BuildLogger(cfg.LogLevel)

	db, err := dal.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	b := &pipeline.TreeBuilder{
		DB:      db,
		Config:  cfg,
		Storage: storage.NewFSStorage(cfg.TargetDir),
		Process: translit.CommandProcess(cmd.String("converter")),
		Logger:  logger,
	}
	return b.Run(ctx, cmd.StringSlice("locale"))
}

func main() {
	cmd := &cli.Command{
		Name:   "buildtree",
		Usage:  "Generate the per-script content skeleton from the canonical text database",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config overlay",
				Sources: cli.EnvVars("TIPITAKA_CONFIG"),
			},
			&cli.StringFlag{Name: "db", Usage: "Canonical text database", Sources: cli.EnvVars("TIPITAKA_DB")},
			&cli.StringFlag{Name: "target", Usage: "Generated content root"},
			&cli.StringFlag{Name: "nav-file", Usage: "Navigation module output path"},
			&cli.StringSliceFlag{Name: "locale", Aliases: []string{"l"}, Usage: "Target locale (repeatable, default all)"},
			&cli.IntFlag{Name: "max-level", Usage: "Deepest hierarchy level to materialize (0=chapter)"},
			&cli.StringFlag{Name: "converter", Usage: "External script conversion command", Sources: cli.EnvVars("TIPITAKA_CONVERTER")},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("tree build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
