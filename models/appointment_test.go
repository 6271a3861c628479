package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"booked to confirmed", StatusBooked, StatusConfirmed, true},
		{"booked to rejected", StatusBooked, StatusRejected, true},
		{"booked to completed", StatusBooked, StatusCompleted, false},
		{"booked to cancelled", StatusBooked, StatusCancelled, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"confirmed to booked", StatusConfirmed, StatusBooked, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusBooked, false},
		{"no re-entrant confirm", StatusConfirmed, StatusConfirmed, false},
		{"unknown status", AppointmentStatus("draft"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAppointmentDecidableBy(t *testing.T) {
	appointment := Appointment{Package: Package{ProviderID: 7}}

	tests := []struct {
		name     string
		callerID uint
		role     string
		allowed  bool
	}{
		{"owning provider", 7, RoleProvider, true},
		{"other provider", 8, RoleProvider, false},
		{"admin who is not the owner", 9, RoleAdmin, true},
		{"tourist is never an owner", 8, RoleTourist, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := appointment.DecidableBy(tt.callerID, tt.role)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsValidTier(t *testing.T) {
	assert.True(t, IsValidTier(TierStandard))
	assert.True(t, IsValidTier(TierPremium))
	assert.True(t, IsValidTier(TierVIP))
	assert.False(t, IsValidTier("Platinum"))
	assert.False(t, IsValidTier(""))
}

func TestPackageOffersTier(t *testing.T) {
	pkg := Package{Packages: []SubPackage{
		{Tier: TierStandard, Price: 100, TourDays: 1},
		{Tier: TierPremium, Price: 200, TourDays: 2},
	}}

	assert.True(t, pkg.OffersTier(TierStandard))
	assert.False(t, pkg.OffersTier(TierVIP))
}

func TestAssignmentIsActive(t *testing.T) {
	assert.True(t, (&GuideAssignment{Status: AssignmentPending}).IsActive())
	assert.True(t, (&GuideAssignment{Status: AssignmentConfirmed}).IsActive())
	assert.False(t, (&GuideAssignment{Status: AssignmentCancelled}).IsActive())
	assert.False(t, (&GuideAssignment{Status: AssignmentCompleted}).IsActive())
}
