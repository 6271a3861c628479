// Package stats holds the read-only projections shared by the report
// endpoint and API consumers, so clients don't each reimplement them.
package stats

import (
	"github.com/wanderlk/tour-api/models"
)

// ReviewSummary aggregates a list of reviews for display.
type ReviewSummary struct {
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"` // rating -> count, keys 1..5
}

// SummarizeReviews computes the average rating and the per-star
// distribution over reviews. Ratings outside 1..5 are ignored.
func SummarizeReviews(reviews []models.Review) ReviewSummary {
	summary := ReviewSummary{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	total := 0
	for _, review := range reviews {
		if review.Rating < 1 || review.Rating > 5 {
			continue
		}
		summary.Count++
		summary.Distribution[review.Rating]++
		total += review.Rating
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary
}

// TierCounts tallies appointments by selected tier, counting only the
// statuses that represent a real booking (booked, confirmed, completed).
func TierCounts(appointments []models.Appointment) (total int64, perTier map[models.PackageTier]int64) {
	perTier = map[models.PackageTier]int64{
		models.TierStandard: 0,
		models.TierPremium:  0,
		models.TierVIP:      0,
	}
	for _, appointment := range appointments {
		if !isCounted(appointment.Status) {
			continue
		}
		total++
		perTier[appointment.SelectedTier]++
	}
	return total, perTier
}

func isCounted(status models.AppointmentStatus) bool {
	for _, s := range models.CountedStatuses {
		if status == s {
			return true
		}
	}
	return false
}
