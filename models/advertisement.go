package models

import (
	"gorm.io/gorm"
)

type Advertisement struct {
	gorm.Model
	Title     string `json:"title"`
	Image     string `json:"image"` // filename under the uploads directory
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy uint   `json:"created_by"`
	Creator   User   `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}
