package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tour-api/models"
)

func validTiers() []models.SubPackage {
	return []models.SubPackage{
		{Tier: models.TierStandard, Price: 100, TourDays: 2, Services: "Transport"},
		{Tier: models.TierPremium, Price: 250, TourDays: 3, Services: "Transport, meals"},
		{Tier: models.TierVIP, Price: 500, TourDays: 5, Services: "Everything"},
	}
}

func TestPackageTiersAcceptsCompleteSet(t *testing.T) {
	assert.Empty(t, PackageTiers(validTiers()))
}

func TestPackageTiersRejectsWrongLength(t *testing.T) {
	subs := validTiers()[:2]
	errs := PackageTiers(subs)
	require.NotEmpty(t, errs)

	found := false
	for _, e := range errs {
		if e.Field == "packages" {
			found = true
		}
	}
	assert.True(t, found, "expected a packages-level error")
}

func TestPackageTiersRejectsDuplicateTier(t *testing.T) {
	subs := validTiers()
	subs[1].Tier = models.TierStandard // Standard twice, Premium missing

	errs := PackageTiers(subs)

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "duplicate Standard tier")
	assert.Contains(t, messages, "missing Premium tier")
}

func TestPackageTiersRejectsUnknownTier(t *testing.T) {
	subs := validTiers()
	subs[2].Tier = "Platinum"

	errs := PackageTiers(subs)
	require.NotEmpty(t, errs)
	assert.Equal(t, "packages[2].tier", errs[0].Field)
}

func TestPackageTiersRejectsNonPositivePriceAndDays(t *testing.T) {
	subs := validTiers()
	subs[0].Price = 0
	subs[1].TourDays = 0

	errs := PackageTiers(subs)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "packages[0].price")
	assert.Contains(t, fields, "packages[1].tour_days")
}

func TestDateOrder(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"end after start", base, base.AddDate(0, 0, 3), false},
		{"end equals start", base, base, true},
		{"end before start", base.AddDate(0, 0, 3), base, true},
		{"missing start", time.Time{}, base, true},
		{"missing end", base, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := DateOrder(tt.start, tt.end)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestStructTierRule(t *testing.T) {
	type request struct {
		Tier models.PackageTier `validate:"required,tier"`
	}

	assert.Empty(t, Struct(request{Tier: models.TierPremium}))

	errs := Struct(request{Tier: "Deluxe"})
	require.Len(t, errs, 1)
	assert.Equal(t, "must be one of Standard, Premium or VIP", errs[0].Message)
}

func TestStructRequiredAndBounds(t *testing.T) {
	type request struct {
		Name    string `validate:"required"`
		Members int    `validate:"gte=1"`
	}

	errs := Struct(request{Members: 0})
	assert.Len(t, errs, 2)
}
