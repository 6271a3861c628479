package models

import (
	"errors"
	"time"
)

type User struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name"`
	Email          string        `json:"email" gorm:"unique"`
	Mobile         string        `json:"mobile"`
	Password       string        `json:"password,omitempty"`
	ProfilePicture string        `json:"profile_picture"`
	RoleID         uint          `json:"role_id"`
	Role           Role          `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Packages       []Package     `json:"packages,omitempty" gorm:"foreignKey:ProviderID"`
	Appointments   []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Note: User has no DeletedAt column. Accounts are hard-deleted so the
// unique email index never collides when the same person registers again.

// CanBeDeleted refuses deletion of admin accounts, regardless of who
// asks. Role must be preloaded.
func (u *User) CanBeDeleted() error {
	if u.Role.Name == RoleAdmin {
		return errors.New("admin accounts cannot be deleted")
	}
	return nil
}
