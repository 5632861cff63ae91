package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/platform/config"
	firestoreclient "github.com/trashtocash/admin-api/internal/platform/firestore"
	"github.com/trashtocash/admin-api/internal/platform/logging"
	"github.com/trashtocash/admin-api/internal/repository"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log := logging.New("info", "console")
		log.Error().Err(err).Msg("export-report failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("export-report", flag.ContinueOnError)
	format := fs.String("format", "csv", "csv or xlsx")
	out := fs.String("out", "", "output path (default report-YYYY-MM-DD.<format>)")
	search := fs.String("search", "", "search text")
	status := fs.String("status", "all", "all, done, pending or error")
	view := fs.String("view", "report", "report searches ids only, warehouse searches every column")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *format != "csv" && *format != "xlsx" {
		return fmt.Errorf("--format must be csv or xlsx, got %q", *format)
	}
	statusFilter, err := report.ParseStatusFilter(*status)
	if err != nil {
		return fmt.Errorf("parse --status: %w", err)
	}

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	scoring, err := config.LoadScoring(cfg.ScoringFile)
	if err != nil {
		return fmt.Errorf("scoring load: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logging.WithContext(ctx, log)

	client, _, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("firestore init: %w", err)
	}
	defer client.Close()

	svc := report.NewService(
		repository.NewTransactionRepository(client),
		report.NewNormalizer(scoring.Weights, scoring.Aliases),
		cfg.Location,
	)
	res, err := svc.Report(ctx, report.Query{
		Search: *search,
		Status: statusFilter,
		Mode:   report.ParseSearchMode(*view),
	})
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	path := *out
	if path == "" {
		path = report.ExportFilename(time.Now().In(cfg.Location), *format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if *format == "xlsx" {
		err = report.WriteXLSX(f, res.Items)
	} else {
		err = report.WriteCSV(f, res.Items)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("rows", len(res.Items)).
		Int("errors", res.Stats.RecyclingProcessErrors).
		Int("total", res.Stats.TotalRecyclingProcess).
		Msg("report exported")
	return nil
}
