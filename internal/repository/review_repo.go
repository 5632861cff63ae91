package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/trashtocash/admin-api/pkg/model"
)

const reviewsCollection = "reviews"

// ReviewRepository lists and appends customer reviews.
type ReviewRepository struct {
	client *firestore.Client
}

func NewReviewRepository(client *firestore.Client) *ReviewRepository {
	return &ReviewRepository{client: client}
}

func (r *ReviewRepository) ListReviews(ctx context.Context) ([]model.RawDocument, error) {
	return collectRaw(r.client.Collection(reviewsCollection).Documents(ctx), reviewsCollection)
}

// CreateReview appends in under a generated id.
func (r *ReviewRepository) CreateReview(ctx context.Context, in model.ReviewInput) (string, error) {
	ref, _, err := r.client.Collection(reviewsCollection).Add(ctx, in)
	if err != nil {
		return "", fmt.Errorf("add review: %w", err)
	}
	return ref.ID, nil
}
