package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/platform/config"
	firestoreclient "github.com/trashtocash/admin-api/internal/platform/firestore"
	"github.com/trashtocash/admin-api/internal/platform/logging"
	"github.com/trashtocash/admin-api/internal/repository"
)

// inspect-transaction prints one recycle transaction as stored and as the
// dashboard reads it, to debug documents with drifted field names.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log := logging.New("info", "console")
		log.Error().Err(err).Msg("inspect-transaction failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect-transaction", flag.ContinueOnError)
	id := fs.String("id", "", "recycle_transactions document id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	scoring, err := config.LoadScoring(cfg.ScoringFile)
	if err != nil {
		return fmt.Errorf("scoring load: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, _, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("firestore init: %w", err)
	}
	defer client.Close()

	raw, err := repository.NewTransactionRepository(client).GetTransaction(ctx, *id)
	if err != nil {
		return fmt.Errorf("get transaction %s: %w", *id, err)
	}

	fmt.Fprintln(out, "Stored fields:")
	for key, v := range raw.Data {
		fmt.Fprintf(out, "  %-14s %-22T %v\n", key, v, v)
	}

	var errCount int
	tx := report.NewNormalizer(scoring.Weights, scoring.Aliases).Normalize(raw, &errCount)
	row := report.Row(tx, cfg.Location)

	fmt.Fprintln(out, "\nAs displayed:")
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(row); err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	if !report.KnownStatus(raw.Data["status"]) {
		fmt.Fprintf(out, "\nstatus %v is not a known value and reads as Done\n", raw.Data["status"])
	}
	if missing := report.BackfillFields(raw); missing != nil {
		fmt.Fprintf(out, "\nmigrate-backfill-status would set: %v\n", missing)
	}
	return nil
}
