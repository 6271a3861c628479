package tourist

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
	"github.com/wanderlk/tour-api/validation"
)

type BookingRequest struct {
	PackageID    uint               `json:"package_id" validate:"required"`
	SelectedTier models.PackageTier `json:"selected_tier" validate:"required,tier"`
	MembersCount int                `json:"members_count" validate:"required,gte=1"`
	Note         string             `json:"note"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	NeedsGuide   bool               `json:"needs_guide"`
}

// CreateAppointment books a tour package for the authenticated tourist.
func CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	req := new(BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := validation.Struct(req)
	errs = append(errs, validation.DateOrder(req.StartDate, req.EndDate)...)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	// The tier has to be one the package actually offers
	var pkg models.Package
	if err := db.DB.Preload("Packages").First(&pkg, req.PackageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Package not found",
		})
	}
	if !pkg.OffersTier(req.SelectedTier) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []validation.FieldError{{Field: "selected_tier", Message: "is not offered by this package"}},
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	appointment := models.Appointment{
		UserID:       userID,
		UserName:     user.Name,
		PackageID:    req.PackageID,
		SelectedTier: req.SelectedTier,
		MembersCount: req.MembersCount,
		Note:         req.Note,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NeedsGuide:   req.NeedsGuide,
		Status:       models.StatusBooked,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments returns the caller's bookings partitioned into
// upcoming and past by comparing the start date to now.
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Package").
		Where("user_id = ?", userID).
		Order("start_date asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	upcoming := make([]models.Appointment, 0)
	past := make([]models.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.StartDate.After(now) {
			upcoming = append(upcoming, appointment)
		} else {
			past = append(past, appointment)
		}
	}

	return c.JSON(fiber.Map{
		"upcoming": upcoming,
		"past":     past,
		"count":    len(appointments),
	})
}

// CancelAppointment lets the tourist cancel a confirmed booking.
func CancelAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if appointment.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You do not own this appointment",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(appointment)
}
