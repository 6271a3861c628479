package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// CountedStatuses are the states that contribute to a package's booking
// counts.
var CountedStatuses = []AppointmentStatus{StatusBooked, StatusConfirmed, StatusCompleted}

type Appointment struct {
	gorm.Model
	UserID       uint              `json:"user_id"`
	User         User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserName     string            `json:"user_name"`
	MembersCount int               `json:"members_count"`
	PackageID    uint              `json:"package_id"`
	Package      Package           `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	SelectedTier PackageTier       `json:"selected_tier"`
	Note         string            `json:"note"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	NeedsGuide   bool              `json:"needs_guide"`
	Status       AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusBooked
	}
	return nil
}

// CanTransition reports whether moving from to next is allowed.
// booked -> confirmed | rejected; confirmed -> completed | cancelled.
// Terminal states have no outgoing transitions.
func CanTransition(from, to AppointmentStatus) error {
	switch from {
	case StatusBooked:
		if to != StatusConfirmed && to != StatusRejected {
			return fmt.Errorf("invalid transition from booked to %s", to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusRejected, StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", from)
	default:
		return fmt.Errorf("unknown status %s", from)
	}
	return nil
}

// DecidableBy reports whether the caller may confirm or reject the
// appointment: only the provider owning its package, or an admin.
// Package must be preloaded.
func (a *Appointment) DecidableBy(callerID uint, role string) error {
	if role == RoleAdmin {
		return nil
	}
	if a.Package.ProviderID != callerID {
		return errors.New("you do not own the package for this appointment")
	}
	return nil
}

// UpdateStatus validates the transition and persists the new status.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := CanTransition(a.Status, newStatus); err != nil {
		return err
	}
	a.Status = newStatus
	return tx.Save(a).Error
}
