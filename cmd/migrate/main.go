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
	if v := cmd.String("source"); v != "" {
		cfg.SourceDir = v
	}
	if v := cmd.String("target"); v != "" {
		cfg.TargetDir = v
	}
	if v := cmd.String("nav-file"); v != "" {
		cfg.NavFile = v
	}
	if v := cmd.Int("workers"); v > 0 {
		cfg.Workers = int(v)
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := logging.BuildLogger(cfg.LogLevel)

	var db *dal.DB
	if path := cmd.String("db"); path != "" {
		db, err = dal.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
	}

	books := cmd.StringSlice("book")
	if basket := cmd.String("basket"); basket != "" {
		for _, b := range config.BooksInBasket(basket) {
			books = append(books, b.Code)
		}
		if len(books) == 0 {
			return fmt.Errorf("unknown basket %q", basket)
		}
	}

	r := &pipeline.Runner{
		Config:  cfg,
		Storage: storage.NewFSStorage(cfg.TargetDir),
		Process: translit.CommandProcess(cmd.String("converter")),
		Logger:  logger,
		DB:      db,
	}
	return r.Run(ctx, cmd.StringSlice("locale"), books)
}

func main() {
	cmd := &cli.Command{
		Name:   "migrate",
		Usage:  "Migrate the legacy Tipiṭaka markdown tree into per-script site content",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config overlay",
				Sources: cli.EnvVars("TIPITAKA_CONFIG"),
			},
			&cli.StringFlag{Name: "source", Usage: "Legacy markdown tree root"},
			&cli.StringFlag{Name: "target", Usage: "Generated content root"},
			&cli.StringFlag{Name: "nav-file", Usage: "Navigation module output path"},
			&cli.StringSliceFlag{Name: "locale", Aliases: []string{"l"}, Usage: "Target locale (repeatable, default all)"},
			&cli.StringSliceFlag{Name: "book", Aliases: []string{"b"}, Usage: "Book code or reference (repeatable, default all)"},
			&cli.StringFlag{Name: "basket", Usage: "Migrate every book of one basket (v, sutta, abhi)"},
			&cli.StringFlag{Name: "db", Usage: "Optional page-position database", Sources: cli.EnvVars("TIPITAKA_DB")},
			&cli.StringFlag{Name: "converter", Usage: "External script conversion command", Sources: cli.EnvVars("TIPITAKA_CONVERTER")},
			&cli.IntFlag{Name: "workers", Usage: "Books processed in parallel per locale"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
