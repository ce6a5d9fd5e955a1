package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/logging"
	"github.com/openpali/tipitaka-tools/internal/tocreport"
	"github.com/openpali/tipitaka-tools/internal/translit"
)

func run(ctx context.Context, cmd *cli.Command) error {
	locale := cmd.String("locale")
	if !config.IsLocale(locale) {
		return fmt.Errorf("unknown locale %q", locale)
	}
	logger := logging.BuildLogger(cmd.String("log-level"))

	g := &tocreport.Generator{
		SourceDir: cmd.String("source"),
		OutputDir: cmd.String("output"),
		Locale:    locale,
		Converter: translit.NewConverter("IASTPali", translit.CommandProcess(cmd.String("converter")), logger),
		Logger:    logger,
	}
	if cmd.Bool("all") {
		return g.GenerateAll()
	}
	books := cmd.Args().Slice()
	if len(books) == 0 {
		return fmt.Errorf("pass book codes or --all")
	}
	for _, ref := range books {
		if err := g.GenerateBook(ref); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "toc",
		Usage:     "Generate per-book contents reports from the legacy markdown tree",
		ArgsUsage: "[book code ...]",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Value: "tipitaka", Usage: "Legacy markdown tree root"},
			&cli.StringFlag{Name: "output", Value: "toc", Usage: "Report output directory"},
			&cli.StringFlag{Name: "locale", Value: config.DefaultLocale, Usage: "Script for titles"},
			&cli.BoolFlag{Name: "all", Usage: "Report every book with a root file"},
			&cli.StringFlag{Name: "converter", Usage: "External script conversion command", Sources: cli.EnvVars("TIPITAKA_CONVERTER")},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("toc generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
