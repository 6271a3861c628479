package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wanderlk/tour-api/models"
)

func TestSummarizeReviews(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
		{Rating: 1},
	}

	summary := SummarizeReviews(reviews)

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 3.5, summary.Average, 0.0001)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 1}, summary.Distribution)
}

func TestSummarizeReviewsEmpty(t *testing.T) {
	summary := SummarizeReviews(nil)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
}

func TestSummarizeReviewsSkipsOutOfRangeRatings(t *testing.T) {
	reviews := []models.Review{
		{Rating: 3},
		{Rating: 0},
		{Rating: 7},
	}

	summary := SummarizeReviews(reviews)

	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 3.0, summary.Average)
}

func TestTierCountsPartitionsByTierAndStatus(t *testing.T) {
	appointments := []models.Appointment{
		{SelectedTier: models.TierStandard, Status: models.StatusBooked},
		{SelectedTier: models.TierStandard, Status: models.StatusConfirmed},
		{SelectedTier: models.TierPremium, Status: models.StatusCompleted},
		{SelectedTier: models.TierVIP, Status: models.StatusRejected},   // not counted
		{SelectedTier: models.TierVIP, Status: models.StatusCancelled},  // not counted
		{SelectedTier: models.TierVIP, Status: models.StatusConfirmed},
	}

	total, perTier := TierCounts(appointments)

	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(2), perTier[models.TierStandard])
	assert.Equal(t, int64(1), perTier[models.TierPremium])
	assert.Equal(t, int64(1), perTier[models.TierVIP])
}

func TestTierCountsEmpty(t *testing.T) {
	total, perTier := TierCounts(nil)

	assert.Equal(t, int64(0), total)
	// Every tier key is present even with no bookings
	assert.Len(t, perTier, 3)
	for _, tier := range models.Tiers {
		assert.Equal(t, int64(0), perTier[tier])
	}
}
