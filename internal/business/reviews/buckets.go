package reviews

import (
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// positiveThreshold is the lowest rating counted as positive.
const positiveThreshold = 4

// Bucketize groups reviews by calendar month for the analysis chart. The month
// is read back from the display date string in loc, not from CreatedAt, so the
// chart agrees with the dates printed on the review cards. Reviews without a
// display date are left out. Months without reviews are omitted.
func Bucketize(reviews []model.Review, loc *time.Location) []model.MonthlyReviewBucket {
	var counts [12]struct {
		seen               bool
		positive, negative int
	}

	for _, r := range reviews {
		if r.Date == "" {
			continue
		}
		d, err := util.ParseDisplayDate(r.Date, loc)
		if err != nil {
			continue
		}
		c := &counts[d.Month()-1]
		c.seen = true
		if r.Rating >= positiveThreshold {
			c.positive++
		} else {
			c.negative++
		}
	}

	var out []model.MonthlyReviewBucket
	for i, c := range counts {
		if !c.seen {
			continue
		}
		out = append(out, model.MonthlyReviewBucket{
			Month:    monthLabels[i],
			Positive: c.positive,
			Negative: c.negative,
		})
	}
	return out
}

// StarDistribution counts ratings 1 through 5. Out-of-range ratings are ignored.
func StarDistribution(reviews []model.Review) [5]int {
	var stars [5]int
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			stars[r.Rating-1]++
		}
	}
	return stars
}
