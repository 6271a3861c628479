package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
	"github.com/wanderlk/tour-api/validation"
)

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Get all appointments, optionally filtered by user
// @Tags appointments
// @Accept json
// @Produce json
// @Param userId query int false "User ID"
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Package").Preload("User")

	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_date asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetPendingAppointments lists appointments still waiting for a provider
// decision.
func GetPendingAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Preload("Package").Preload("User").
		Where("status = ?", models.StatusBooked).
		Order("start_date asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch pending appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Description Get an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Package.Packages").Preload("User").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// AppointmentUpdateRequest is the restricted set of fields a client may
// change on an existing appointment.
type AppointmentUpdateRequest struct {
	MembersCount *int                      `json:"members_count"`
	PackageID    *uint                     `json:"package_id"`
	SelectedTier *models.PackageTier       `json:"selected_tier"`
	Note         *string                   `json:"note"`
	StartDate    *time.Time                `json:"start_date"`
	EndDate      *time.Time                `json:"end_date"`
	Status       *models.AppointmentStatus `json:"status"`
	NeedsGuide   *bool                     `json:"needs_guide"`
}

// UpdateAppointment merges the allowed fields into the stored record and
// re-validates date ordering and the tier before saving.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	appointment, status, err := loadOwnAppointment(c, id)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	req := new(AppointmentUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if req.MembersCount != nil {
		if *req.MembersCount < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []validation.FieldError{{Field: "members_count", Message: "must be at least 1"}},
			})
		}
		appointment.MembersCount = *req.MembersCount
	}
	if req.PackageID != nil {
		appointment.PackageID = *req.PackageID
	}
	if req.SelectedTier != nil {
		appointment.SelectedTier = *req.SelectedTier
	}
	if req.Note != nil {
		appointment.Note = *req.Note
	}
	if req.StartDate != nil {
		appointment.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		appointment.EndDate = *req.EndDate
	}
	if req.NeedsGuide != nil {
		appointment.NeedsGuide = *req.NeedsGuide
	}

	// Re-validate after the merge: the stored dates and the patch
	// together must still be ordered, and the tier must be offered.
	if errs := validation.DateOrder(appointment.StartDate, appointment.EndDate); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var pkg models.Package
	if err := db.DB.Preload("Packages").First(&pkg, appointment.PackageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Package not found",
		})
	}
	if !pkg.OffersTier(appointment.SelectedTier) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []validation.FieldError{{Field: "selected_tier", Message: "is not offered by this package"}},
		})
	}

	if req.Status != nil && *req.Status != appointment.Status {
		if err := models.CanTransition(appointment.Status, *req.Status); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		appointment.Status = *req.Status
	}

	if err := db.DB.Save(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// DeleteAppointment removes an appointment. Only the booking tourist or
// an admin may delete it.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	appointment, status, err := loadOwnAppointment(c, id)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := db.DB.Delete(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// loadOwnAppointment fetches an appointment and verifies the caller is
// the booking tourist or an admin.
func loadOwnAppointment(c *fiber.Ctx, id string) (*models.Appointment, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return nil, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, "Appointment not found")
	}

	if appointment.UserID != userID && role != models.RoleAdmin {
		return nil, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, "You do not own this appointment")
	}

	return &appointment, fiber.StatusOK, nil
}
