package db

import (
	"log"

	"github.com/wanderlk/tour-api/config"
	"github.com/wanderlk/tour-api/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the fixed roles, their permissions and the initial admin
// account if they don't exist yet.
func Seed() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleProvider, Description: "Package provider who publishes tours and manages bookings"},
		{Name: models.RoleTourist, Description: "Tourist who books tour packages"},
		{Name: models.RoleGuide, Description: "Tour guide who can be assigned to bookings"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_package", Description: "Publish tour packages", Resource: "packages", Action: "create"},
		{Name: "read_packages", Description: "View tour packages", Resource: "packages", Action: "read"},
		{Name: "update_package", Description: "Update tour packages", Resource: "packages", Action: "update"},
		{Name: "delete_package", Description: "Delete tour packages", Resource: "packages", Action: "delete"},

		{Name: "create_appointment", Description: "Book appointments", Resource: "appointments", Action: "create"},
		{Name: "read_appointments", Description: "View appointments", Resource: "appointments", Action: "read"},
		{Name: "update_appointment", Description: "Update appointments", Resource: "appointments", Action: "update"},
		{Name: "delete_appointment", Description: "Cancel appointments", Resource: "appointments", Action: "delete"},

		{Name: "create_review", Description: "Write reviews", Resource: "reviews", Action: "create"},
		{Name: "read_reviews", Description: "View reviews", Resource: "reviews", Action: "read"},
		{Name: "update_review", Description: "Edit reviews", Resource: "reviews", Action: "update"},
		{Name: "delete_review", Description: "Delete reviews", Resource: "reviews", Action: "delete"},

		{Name: "manage_advertisements", Description: "Manage advertisements", Resource: "advertisements", Action: "manage"},
		{Name: "manage_users", Description: "Manage user accounts", Resource: "users", Action: "manage"},
		{Name: "manage_guides", Description: "Assign guides to bookings", Resource: "guides", Action: "manage"},
	}

	for _, permission := range permissions {
		var existing models.Permission
		if DB.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	grantPermissions(models.RoleAdmin, nil) // nil grants everything
	grantPermissions(models.RoleProvider, []string{
		"create_package", "read_packages", "update_package", "delete_package",
		"read_appointments", "update_appointment", "read_reviews",
	})
	grantPermissions(models.RoleTourist, []string{
		"read_packages", "create_appointment", "read_appointments",
		"update_appointment", "delete_appointment",
		"create_review", "read_reviews", "update_review", "delete_review",
	})
	grantPermissions(models.RoleGuide, []string{
		"read_appointments", "manage_guides",
	})

	seedAdmin()
}

func grantPermissions(roleName string, names []string) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}

	var permissions []models.Permission
	if names == nil {
		DB.Find(&permissions)
	} else {
		DB.Where("name IN ?", names).Find(&permissions)
	}

	DB.Model(&role).Association("Permissions").Clear()
	DB.Model(&role).Association("Permissions").Append(permissions)
}

func seedAdmin() {
	email := config.Config("ADMIN_EMAIL")
	password := config.Config("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	var adminRole models.Role
	if err := DB.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		log.Printf("Error finding admin role: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		RoleID:   adminRole.ID,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return
	}
	log.Println("✅ Seeded admin account")
}
