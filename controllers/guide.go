package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/availability"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
	"github.com/wanderlk/tour-api/validation"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AvailabilityRequest struct {
	Dates       []string `json:"dates" validate:"required,min=1"`
	IsAvailable bool     `json:"is_available"`
}

// SetAvailability records the calling guide's availability for a list of
// calendar days. Posting an existing day updates its flag.
func SetAvailability(c *fiber.Ctx) error {
	guideID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	req := new(AvailabilityRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if errs := validation.Struct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var saved []models.GuideAvailability
	for _, raw := range req.Dates {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []validation.FieldError{{Field: "dates", Message: fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", raw)}},
			})
		}

		var entry models.GuideAvailability
		err = db.DB.Where("guide_id = ? AND date = ?", guideID, day).First(&entry).Error
		if err == nil {
			entry.IsAvailable = req.IsAvailable
			if err := db.DB.Save(&entry).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
					Message: "Failed to update availability",
					Error:   err.Error(),
				})
			}
		} else {
			entry = models.GuideAvailability{GuideID: guideID, Date: day, IsAvailable: req.IsAvailable}
			if err := db.DB.Create(&entry).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
					Message: "Failed to save availability",
					Error:   err.Error(),
				})
			}
		}
		saved = append(saved, entry)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetGuideAvailability lists a guide's availability entries.
func GetGuideAvailability(c *fiber.Ctx) error {
	guideID := c.Params("id")
	var entries []models.GuideAvailability
	if err := db.DB.Where("guide_id = ?", guideID).Order("date asc").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(entries)
}

type AssignGuideRequest struct {
	GuideID       uint    `json:"guide_id" validate:"required"`
	AppointmentID uint    `json:"appointment_id" validate:"required"`
	PaymentPerDay float64 `json:"payment_per_day" validate:"required,gt=0"`
}

// AssignGuide books a guide for an appointment's date range. The
// availability and overlap check runs inside the same transaction that
// creates the assignment and clears the appointment's needs_guide flag,
// with the guide's existing assignments locked for the duration.
func AssignGuide(c *fiber.Ctx) error {
	req := new(AssignGuideRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if errs := validation.Struct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, req.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if !appointment.NeedsGuide {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Appointment does not need a guide",
		})
	}

	var guide models.User
	if err := db.DB.Preload("Role").First(&guide, req.GuideID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Guide not found",
		})
	}
	if guide.Role.Name != models.RoleGuide {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User is not a guide",
		})
	}

	totalDays := availability.DaysBetween(appointment.StartDate, appointment.EndDate)
	assignment := models.GuideAssignment{
		GuideID:       req.GuideID,
		AppointmentID: appointment.ID,
		StartDate:     availability.DateOnly(appointment.StartDate),
		EndDate:       availability.DateOnly(appointment.EndDate),
		TotalDays:     totalDays,
		PaymentPerDay: req.PaymentPerDay,
		TotalPayment:  float64(totalDays) * req.PaymentPerDay,
		Status:        models.AssignmentPending,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var entries []models.GuideAvailability
		if err := tx.Where("guide_id = ?", req.GuideID).Find(&entries).Error; err != nil {
			return err
		}

		// Lock the guide's assignment rows while we check for overlap.
		var existing []models.GuideAssignment
		if err := tx.Raw(`
			SELECT *
			FROM guide_assignments
			WHERE guide_id = ? AND deleted_at IS NULL
			FOR UPDATE
		`, req.GuideID).Scan(&existing).Error; err != nil {
			return err
		}

		if err := availability.CheckGuide(entries, existing, appointment.StartDate, appointment.EndDate); err != nil {
			return err
		}

		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		// Same transaction as the assignment insert: the two writes
		// commit or roll back together.
		return tx.Model(&appointment).Update("needs_guide", false).Error
	})
	if err != nil {
		var conflict *availability.ConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": conflict.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign guide",
			Error:   err.Error(),
		})
	}

	go notifyGuide(&guide, &assignment)

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func notifyGuide(guide *models.User, assignment *models.GuideAssignment) {
	if guide.Email == "" {
		return
	}

	subject := "You have been assigned to a tour"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have been assigned to a tour booking.</p>
		<ul>
			<li><strong>From:</strong> %s</li>
			<li><strong>To:</strong> %s</li>
			<li><strong>Days:</strong> %d</li>
			<li><strong>Payment:</strong> %.2f</li>
		</ul>
		<p>Best regards,</p>
		<p>The Tour Team</p>
	`, guide.Name,
		assignment.StartDate.Format(dateLayout),
		assignment.EndDate.Format(dateLayout),
		assignment.TotalDays,
		assignment.TotalPayment)

	if err := utils.SendEmail(guide.Email, subject, body); err != nil {
		log.Printf("Failed to send assignment email for assignment %d: %v", assignment.ID, err)
	}
}

// GetAssignments lists assignments, optionally for a single guide.
func GetAssignments(c *fiber.Ctx) error {
	query := db.DB.Preload("Guide").Preload("Appointment")

	if guideID := c.Query("guideId"); guideID != "" {
		query = query.Where("guide_id = ?", guideID)
	}

	var assignments []models.GuideAssignment
	if err := query.Order("start_date asc").Find(&assignments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assignments",
			Error:   err.Error(),
		})
	}
	return c.JSON(assignments)
}

// UpdateAssignmentStatus moves an assignment between pending, confirmed,
// cancelled and completed.
func UpdateAssignmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var assignment models.GuideAssignment
	if err := db.DB.First(&assignment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assignment not found",
		})
	}

	var input struct {
		Status models.AssignmentStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	switch input.Status {
	case models.AssignmentPending, models.AssignmentConfirmed,
		models.AssignmentCancelled, models.AssignmentCompleted:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'pending', 'confirmed', 'cancelled' or 'completed'.",
		})
	}

	assignment.Status = input.Status
	if err := db.DB.Save(&assignment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update assignment",
			Error:   err.Error(),
		})
	}

	return c.JSON(assignment)
}

// GetAvailableGuides lists guides eligible for a date range.
func GetAvailableGuides(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start must be a date in YYYY-MM-DD format",
		})
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end must be a date in YYYY-MM-DD format",
		})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end must not be before start",
		})
	}

	var guides []models.User
	if err := db.DB.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleGuide).
		Find(&guides).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch guides",
			Error:   err.Error(),
		})
	}

	eligible := make([]fiber.Map, 0)
	for _, guide := range guides {
		var entries []models.GuideAvailability
		if err := db.DB.Where("guide_id = ?", guide.ID).Find(&entries).Error; err != nil {
			continue
		}
		var assignments []models.GuideAssignment
		if err := db.DB.Where("guide_id = ?", guide.ID).Find(&assignments).Error; err != nil {
			continue
		}

		if err := availability.CheckGuide(entries, assignments, start, end); err == nil {
			eligible = append(eligible, fiber.Map{
				"id":     guide.ID,
				"name":   guide.Name,
				"email":  guide.Email,
				"mobile": guide.Mobile,
			})
		}
	}

	return c.JSON(fiber.Map{
		"guides": eligible,
		"start":  start.Format(dateLayout),
		"end":    end.Format(dateLayout),
	})
}
