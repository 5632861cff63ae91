package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trashtocash/admin-api/pkg/model"
)

func review(rating int, ts *time.Time, loc *time.Location) model.Review {
	return FromDocument(model.RawDocument{Data: map[string]any{
		"rating":    int64(rating),
		"createdAt": timeOrNil(ts),
	}}, loc)
}

func timeOrNil(ts *time.Time) any {
	if ts == nil {
		return nil
	}
	return *ts
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func TestBucketizeSingleMarchReview(t *testing.T) {
	base := []model.Review{
		review(2, date(2026, 1, 10), time.UTC),
		review(5, date(2026, 3, 2), time.UTC),
	}
	before := Bucketize(base, time.UTC)

	after := Bucketize(append(base, review(5, date(2026, 3, 20), time.UTC)), time.UTC)

	require.Len(t, after, len(before))
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, "Mar", after[1].Month)
	assert.Equal(t, before[1].Positive+1, after[1].Positive)
	assert.Equal(t, before[1].Negative, after[1].Negative)
}

func TestBucketizeOrderAndPolarity(t *testing.T) {
	got := Bucketize([]model.Review{
		review(3, date(2026, 12, 1), time.UTC),
		review(4, date(2026, 2, 1), time.UTC),
		review(1, date(2026, 2, 5), time.UTC),
		review(5, date(2025, 12, 24), time.UTC),
	}, time.UTC)

	assert.Equal(t, []model.MonthlyReviewBucket{
		{Month: "Feb", Positive: 1, Negative: 1},
		{Month: "Dec", Positive: 1, Negative: 1},
	}, got)
}

func TestBucketizeExcludesUndated(t *testing.T) {
	got := Bucketize([]model.Review{
		review(1, nil, time.UTC),
		{Rating: 2, Date: "not a date"},
	}, time.UTC)
	assert.Empty(t, got)
}

func TestBucketizeUsesDisplayLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	ts := time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC)

	got := Bucketize([]model.Review{review(5, &ts, loc)}, loc)
	require.Len(t, got, 1)
	assert.Equal(t, "Mar", got[0].Month)
}

func TestStarDistribution(t *testing.T) {
	got := StarDistribution([]model.Review{
		{Rating: 5}, {Rating: 5}, {Rating: 1}, {Rating: 0}, {Rating: 6}, {Rating: 3},
	})
	assert.Equal(t, [5]int{1, 0, 1, 0, 2}, got)
}
