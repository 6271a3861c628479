package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
)

// StartCronJobs initializes the scheduler for tour reminders and for
// closing out elapsed bookings.
func StartCronJobs() {
	c := cron.New()

	// Hourly: remind tourists whose tour starts tomorrow
	_, err := c.AddFunc("0 * * * *", sendTourReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	// Daily just after midnight: complete elapsed appointments and
	// assignments so guides' calendars free up
	_, err = c.AddFunc("10 0 * * *", completeElapsedBookings)
	if err != nil {
		log.Fatalf("Failed to add completion cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendTourReminders mails every tourist whose confirmed tour starts
// within the next 24 hours.
func sendTourReminders() {
	var appointments []models.Appointment
	now := time.Now()
	windowEnd := now.Add(24 * time.Hour)

	err := db.DB.Preload("User").Preload("Package").
		Where("status = ? AND start_date BETWEEN ? AND ?", models.StatusConfirmed, now, windowEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Your tour %s starts soon", appointment.Package.PackageName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder that your tour starts within the next day.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Package:</strong> %s</li>
			<li><strong>Tier:</strong> %s</li>
			<li><strong>Start Date:</strong> %s</li>
			<li><strong>End Date:</strong> %s</li>
			<li><strong>Members:</strong> %d</li>
		</ul>
		<p>Have a great trip!</p>
		<p>The Tour Team</p>
	`, appointment.UserName,
		appointment.Package.PackageName,
		appointment.SelectedTier,
		appointment.StartDate.Format("2006-01-02"),
		appointment.EndDate.Format("2006-01-02"),
		appointment.MembersCount)

	return utils.SendEmail(appointment.User.Email, subject, body)
}

// completeElapsedBookings marks confirmed appointments whose end date
// has passed as completed, and closes their guide assignments so those
// days stop blocking the guides' calendars.
func completeElapsedBookings() {
	now := time.Now()

	var appointments []models.Appointment
	if err := db.DB.
		Where("status = ? AND end_date < ?", models.StatusConfirmed, now).
		Find(&appointments).Error; err != nil {
		log.Printf("Error fetching elapsed appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := appointment.UpdateStatus(db.DB, models.StatusCompleted); err != nil {
			log.Printf("Failed to complete appointment %d: %v", appointment.ID, err)
		}
	}

	if err := db.DB.Model(&models.GuideAssignment{}).
		Where("status IN ? AND end_date < ?",
			[]models.AssignmentStatus{models.AssignmentPending, models.AssignmentConfirmed}, now).
		Update("status", models.AssignmentCompleted).Error; err != nil {
		log.Printf("Failed to complete elapsed assignments: %v", err)
	}
}
