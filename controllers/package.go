package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/stats"
	"github.com/wanderlk/tour-api/utils"
	"github.com/wanderlk/tour-api/validation"
	"gorm.io/gorm"
)

type PackageRequest struct {
	PackageName string              `json:"package_name" validate:"required"`
	Category    string              `json:"category" validate:"required"`
	Province    string              `json:"province" validate:"required"`
	Description string              `json:"description"`
	Packages    []models.SubPackage `json:"packages"`
}

// GetAllPackages returns every package, optionally filtered by category
// or province.
func GetAllPackages(c *fiber.Ctx) error {
	query := db.DB.Preload("Packages")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if province := c.Query("province"); province != "" {
		query = query.Where("province = ?", province)
	}

	var packages []models.Package
	if err := query.Find(&packages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch packages",
			Error:   err.Error(),
		})
	}
	return c.JSON(packages)
}

// GetPackage returns a package by ID with its booking counts attached.
// The counts are recomputed from the appointments table on every read.
func GetPackage(c *fiber.Ctx) error {
	id := c.Params("id")
	var pkg models.Package
	if err := db.DB.Preload("Packages").First(&pkg, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Package not found",
			Error:   err.Error(),
		})
	}

	if err := attachBookingCounts(&pkg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute booking counts",
			Error:   err.Error(),
		})
	}

	return c.JSON(pkg)
}

// GetPackagesByProvider returns the packages owned by a provider, each
// with read-time booking counts.
func GetPackagesByProvider(c *fiber.Ctx) error {
	providerID := c.Params("id")

	var packages []models.Package
	if err := db.DB.Preload("Packages").Where("provider_id = ?", providerID).Find(&packages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch packages",
			Error:   err.Error(),
		})
	}

	for i := range packages {
		if err := attachBookingCounts(&packages[i]); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to compute booking counts",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(packages)
}

// CreatePackage publishes a new package owned by the calling provider.
func CreatePackage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	req := new(PackageRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := validation.Struct(req)
	errs = append(errs, validation.PackageTiers(req.Packages)...)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	pkg := models.Package{
		PackageName: req.PackageName,
		Category:    req.Category,
		Province:    req.Province,
		Description: req.Description,
		ProviderID:  userID,
		Packages:    req.Packages,
	}

	if err := db.DB.Create(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create package",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// UpdatePackage edits a package. Only the owning provider or an admin may
// update; the tier set is re-validated whenever sub-packages are sent.
func UpdatePackage(c *fiber.Ctx) error {
	id := c.Params("id")

	pkg, status, err := loadOwnedPackage(c, id)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	req := new(PackageRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if req.PackageName != "" {
		pkg.PackageName = req.PackageName
	}
	if req.Category != "" {
		pkg.Category = req.Category
	}
	if req.Province != "" {
		pkg.Province = req.Province
	}
	if req.Description != "" {
		pkg.Description = req.Description
	}

	if req.Packages != nil {
		if errs := validation.PackageTiers(req.Packages); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errs,
			})
		}
		// Replace the tier rows wholesale
		if err := db.DB.Where("package_id = ?", pkg.ID).Delete(&models.SubPackage{}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to replace sub-packages",
				Error:   err.Error(),
			})
		}
		for i := range req.Packages {
			req.Packages[i].PackageID = pkg.ID
		}
		pkg.Packages = req.Packages
	}

	if err := db.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update package",
			Error:   err.Error(),
		})
	}

	return c.JSON(pkg)
}

// DeletePackage removes a package and its tier rows.
func DeletePackage(c *fiber.Ctx) error {
	id := c.Params("id")

	pkg, status, err := loadOwnedPackage(c, id)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := db.DB.Where("package_id = ?", pkg.ID).Delete(&models.SubPackage{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete sub-packages",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete package",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// attachBookingCounts recomputes the package's booking totals from the
// appointments table. Never cached: the counts must reflect the current
// rows on every read.
func attachBookingCounts(pkg *models.Package) error {
	var appointments []models.Appointment
	if err := db.DB.
		Where("package_id = ?", pkg.ID).
		Where("status IN ?", models.CountedStatuses).
		Find(&appointments).Error; err != nil {
		return err
	}

	pkg.BookingCount, pkg.TierBookingCount = stats.TierCounts(appointments)
	return nil
}

// loadOwnedPackage fetches a package and verifies the caller owns it or
// is an admin.
func loadOwnedPackage(c *fiber.Ctx, id string) (*models.Package, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var pkg models.Package
	if err := db.DB.Preload("Packages").First(&pkg, id).Error; err != nil {
		return nil, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, "Package not found")
	}

	if pkg.ProviderID != userID && role != models.RoleAdmin {
		return nil, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, "You do not own this package")
	}

	return &pkg, fiber.StatusOK, nil
}
