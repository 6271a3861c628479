package provider

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
)

// GetProviderAppointments returns every appointment booked against the
// calling provider's packages, joined through package ownership.
func GetProviderAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	query := db.DB.Preload("Package").Preload("User").
		Joins("JOIN packages ON packages.id = appointments.package_id").
		Where("packages.provider_id = ?", userID)

	if status := c.Query("status"); status != "" {
		query = query.Where("appointments.status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointments.start_date asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// ConfirmAppointment moves a booked appointment to confirmed. The caller
// must be the provider who owns the appointment's package.
func ConfirmAppointment(c *fiber.Ctx) error {
	return decideAppointment(c, models.StatusConfirmed)
}

// RejectAppointment moves a booked appointment to rejected.
func RejectAppointment(c *fiber.Ctx) error {
	return decideAppointment(c, models.StatusRejected)
}

func decideAppointment(c *fiber.Ctx, decision models.AppointmentStatus) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("User").Preload("Package").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.DecidableBy(userID, role); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, decision); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	go notifyTourist(&appointment, decision)

	return c.JSON(appointment)
}

func notifyTourist(appointment *models.Appointment, decision models.AppointmentStatus) {
	if appointment.User.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your booking for %s has been %s", appointment.Package.PackageName, decision)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been <strong>%s</strong>.</p>
		<ul>
			<li><strong>Package:</strong> %s</li>
			<li><strong>Tier:</strong> %s</li>
			<li><strong>From:</strong> %s</li>
			<li><strong>To:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The Tour Team</p>
	`, appointment.UserName, decision,
		appointment.Package.PackageName, appointment.SelectedTier,
		appointment.StartDate.Format("2006-01-02"),
		appointment.EndDate.Format("2006-01-02"))

	if err := utils.SendEmail(appointment.User.Email, subject, body); err != nil {
		log.Printf("Failed to send booking decision email for appointment %d: %v", appointment.ID, err)
	}
}

// GetDashboardOverview returns booking counts for the provider's packages.
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		BookedCount       int64     `json:"booked_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		RejectedCount     int64     `json:"rejected_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TotalPackages     int64     `json:"total_packages"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	byStatus := func(status models.AppointmentStatus, out *int64) {
		db.DB.Model(&models.Appointment{}).
			Joins("JOIN packages ON packages.id = appointments.package_id").
			Where("packages.provider_id = ?", userID).
			Where("appointments.status = ?", status).
			Count(out)
	}

	db.DB.Model(&models.Appointment{}).
		Joins("JOIN packages ON packages.id = appointments.package_id").
		Where("packages.provider_id = ?", userID).
		Count(&statistics.TotalAppointments)

	byStatus(models.StatusBooked, &statistics.BookedCount)
	byStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	byStatus(models.StatusCompleted, &statistics.CompletedCount)
	byStatus(models.StatusRejected, &statistics.RejectedCount)
	byStatus(models.StatusCancelled, &statistics.CancelledCount)

	db.DB.Model(&models.Package{}).Where("provider_id = ?", userID).Count(&statistics.TotalPackages)
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
