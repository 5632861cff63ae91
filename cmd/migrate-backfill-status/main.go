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
	"github.com/trashtocash/admin-api/pkg/model"
)

// migrate-backfill-status gives every recycle transaction an explicit status
// and camelCase identifiers so that newer readers need no alias lists.
func main() {
	if err := run(os.Args[1:]); err != nil {
		log := logging.New("info", "console")
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("migrate-backfill-status", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "report what would change without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("firestore init: %w", err)
	}
	defer client.Close()
	log.Info().Str("project", cfg.FirebaseProjectID).Str("credentials", credsSource).Msg("connected to Firestore")

	repo := repository.NewTransactionRepository(client)
	docs, err := repo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	patches := planPatches(docs)
	for _, p := range patches {
		log.Debug().Str("id", p.ID).Interface("fields", p.Fields).Msg("backfill")
	}
	log.Info().Int("total", len(docs)).Int("to_update", len(patches)).Msg("scanned transactions")

	if *dryRun || len(patches) == 0 {
		return nil
	}
	if err := repo.BatchPatch(ctx, patches); err != nil {
		return fmt.Errorf("backfill: %w", err)
	}
	log.Info().Int("updated", len(patches)).Int("skipped", len(docs)-len(patches)).Msg("migration complete")
	return nil
}

// planPatches keeps the documents that need backfilling, in input order.
func planPatches(docs []model.RawDocument) []repository.Patch {
	var patches []repository.Patch
	for _, doc := range docs {
		if fields := report.BackfillFields(doc); fields != nil {
			patches = append(patches, repository.Patch{ID: doc.ID, Fields: fields})
		}
	}
	return patches
}
