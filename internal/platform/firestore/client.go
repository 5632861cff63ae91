package firestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/trashtocash/admin-api/internal/platform/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// New creates a Firestore client using credentials provided via env (base64 or
// file). When FIRESTORE_EMULATOR_HOST is set and no credentials are configured
// the client talks to the emulator unauthenticated. The returned string names
// the credential source used.
func New(ctx context.Context, cfg config.Config) (*firestore.Client, string, error) {
	var opts []option.ClientOption
	source := "emulator"
	if cfg.FirebaseCredsBase64 != "" || cfg.FirebaseCredsFile != "" || os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		creds, src, err := cfg.FirebaseCredentialsJSON()
		if err != nil {
			return nil, "", err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
		source = src
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("init firestore client: %w", err)
	}
	return client, source, nil
}

// Ping performs a lightweight check by attempting to iterate collections.
func Ping(ctx context.Context, client *firestore.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := client.Collections(ctx)
	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}
