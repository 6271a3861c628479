package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserName  string  `json:"user_name"`
	Message   string  `json:"message"`
	Rating    int     `json:"rating" gorm:"not null"`
	PackageID uint    `json:"package_id"`
	Package   Package `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

// BeforeCreate hook to keep the rating inside the 1..5 band.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}

// HasExistingReview checks if the user has already reviewed this package.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("user_id = ? AND package_id = ? AND deleted_at IS NULL", r.UserID, r.PackageID).
		Count(&count).Error
	return count > 0, err
}
