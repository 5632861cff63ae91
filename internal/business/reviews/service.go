package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

// ErrSubmit is returned when a review could not be stored.
var ErrSubmit = errors.New("failed to submit review")

const anonymous = "Anonymous"

// Store abstracts the reviews collection.
type Store interface {
	ListReviews(ctx context.Context) ([]model.RawDocument, error)
	CreateReview(ctx context.Context, in model.ReviewInput) (string, error)
}

// Page is what the reviews screen renders: the cards and the monthly chart.
type Page struct {
	Reviews []model.Review              `json:"reviews"`
	Monthly []model.MonthlyReviewBucket `json:"monthly"`
}

// Service lists, analyses and submits customer reviews.
type Service struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

func NewService(store Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, loc: loc, now: time.Now}
}

// FromDocument maps a reviews document, defaulting every missing field.
func FromDocument(doc model.RawDocument, loc *time.Location) model.Review {
	d := doc.Data
	r := model.Review{
		ID:       doc.ID,
		UserName: util.StringOr(d, []string{"userName"}, anonymous),
		Email:    util.StringOr(d, []string{"email"}, ""),
		Comment:  util.StringOr(d, []string{"comment"}, ""),
	}
	if rating, ok := util.ToInt(d["rating"]); ok {
		r.Rating = int(rating)
	}
	if v, ok := util.Lookup(d, []string{"createdAt"}); ok {
		if ts, ok := util.ToTime(v); ok {
			r.CreatedAt = &ts
			r.Date = util.DisplayDate(&ts, loc)
		}
	}
	return r
}

// List loads every review.
func (s *Service) List(ctx context.Context) ([]model.Review, error) {
	docs, err := s.store.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		out = append(out, FromDocument(doc, s.loc))
	}
	return out, nil
}

// Page loads the reviews and their monthly analysis from one fetch.
func (s *Service) Page(ctx context.Context) (Page, error) {
	list, err := s.List(ctx)
	if err != nil {
		return Page{}, err
	}
	return Page{Reviews: list, Monthly: Bucketize(list, s.loc)}, nil
}

// Submit appends a review stamped with the current time.
func (s *Service) Submit(ctx context.Context, in model.ReviewInput) (string, error) {
	in.CreatedAt = s.now().UTC()
	id, err := s.store.CreateReview(ctx, in)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubmit, err)
	}
	return id, nil
}
