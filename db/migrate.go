package db

import (
	"fmt"
	"log"

	"github.com/wanderlk/tour-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Package{},
		&models.SubPackage{},
		&models.Appointment{},
		&models.Review{},
		&models.Advertisement{},
		&models.GuideAvailability{},
		&models.GuideAssignment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
