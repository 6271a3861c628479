package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCanBeDeleted(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed bool
	}{
		{"admin is refused", RoleAdmin, false},
		{"provider is deletable", RoleProvider, true},
		{"tourist is deletable", RoleTourist, true},
		{"guide is deletable", RoleGuide, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := User{Role: Role{Name: tt.role}}
			err := user.CanBeDeleted()
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUserDeleteIsHard(t *testing.T) {
	// GORM soft-deletes any model carrying a gorm.DeletedAt field. User
	// must not have one: a deleted account's row really goes away, so the
	// unique email index stays free for a later registration.
	_, found := reflect.TypeOf(User{}).FieldByName("DeletedAt")
	assert.False(t, found, "User must hard-delete so a removed email can register again")
}
