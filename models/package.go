package models

import (
	"gorm.io/gorm"
)

type PackageTier string

const (
	TierStandard PackageTier = "Standard"
	TierPremium  PackageTier = "Premium"
	TierVIP      PackageTier = "VIP"
)

// Tiers lists every tier a package must offer, in display order.
var Tiers = []PackageTier{TierStandard, TierPremium, TierVIP}

// IsValidTier reports whether t is one of the three known tiers.
func IsValidTier(t PackageTier) bool {
	for _, tier := range Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// SubPackage is one priced tier of a package. Every package carries
// exactly one SubPackage per tier.
type SubPackage struct {
	gorm.Model
	PackageID uint        `json:"package_id"`
	Tier      PackageTier `json:"tier"`
	Price     float64     `json:"price"`
	TourDays  int         `json:"tour_days"`
	Services  string      `json:"services"`
}

type Package struct {
	gorm.Model
	PackageName string       `json:"package_name"`
	Category    string       `json:"category"`
	Province    string       `json:"province"`
	Description string       `json:"description"`
	ProviderID  uint         `json:"provider_id"`
	Provider    User         `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Packages    []SubPackage `json:"packages" gorm:"foreignKey:PackageID"`

	// Read-time aggregates, never stored.
	BookingCount     int64                 `json:"booking_count" gorm:"-"`
	TierBookingCount map[PackageTier]int64 `json:"tier_booking_counts,omitempty" gorm:"-"`
}

// OffersTier reports whether the package carries a sub-package for t.
func (p *Package) OffersTier(t PackageTier) bool {
	for _, sub := range p.Packages {
		if sub.Tier == t {
			return true
		}
	}
	return false
}
