package models

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentCompleted AssignmentStatus = "completed"
)

// GuideAvailability is a single calendar day a guide has marked as
// available (or explicitly unavailable).
type GuideAvailability struct {
	gorm.Model
	GuideID     uint      `json:"guide_id"`
	Guide       User      `json:"guide,omitempty" gorm:"foreignKey:GuideID"`
	Date        time.Time `json:"date"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
}

// GuideAssignment books a guide for an appointment's date range.
// TotalDays and TotalPayment are derived from the range and the daily rate.
type GuideAssignment struct {
	gorm.Model
	GuideID       uint             `json:"guide_id"`
	Guide         User             `json:"guide,omitempty" gorm:"foreignKey:GuideID"`
	AppointmentID uint             `json:"appointment_id"`
	Appointment   Appointment      `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	TotalDays     int              `json:"total_days"`
	PaymentPerDay float64          `json:"payment_per_day"`
	TotalPayment  float64          `json:"total_payment"`
	Status        AssignmentStatus `json:"status"`
}

func (g *GuideAssignment) BeforeCreate(tx *gorm.DB) error {
	if g.Status == "" {
		g.Status = AssignmentPending
	}
	return nil
}

// IsActive reports whether the assignment still blocks the guide's
// calendar. Cancelled and completed assignments release their days.
func (g *GuideAssignment) IsActive() bool {
	return g.Status != AssignmentCancelled && g.Status != AssignmentCompleted
}
