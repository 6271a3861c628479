package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/controllers/provider"
	"github.com/wanderlk/tour-api/controllers/tourist"
	"github.com/wanderlk/tour-api/middleware"
	"github.com/wanderlk/tour-api/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/api/appointments", middleware.Protected())

	appointment.Post("/add", middleware.RequirePermission("appointments", "create"), tourist.CreateAppointment)
	appointment.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetAllAppointments)
	appointment.Get("/pending", middleware.RequireRole(models.RoleAdmin, models.RoleProvider), controllers.GetPendingAppointments)
	appointment.Get("/my", tourist.GetMyAppointments)
	appointment.Get("/provider", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.GetProviderAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Put("/:id", middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointment)
	appointment.Delete("/:id", middleware.RequirePermission("appointments", "delete"), controllers.DeleteAppointment)
	appointment.Put("/:id/confirm", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.ConfirmAppointment)
	appointment.Put("/:id/reject", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.RejectAppointment)
	appointment.Put("/:id/cancel", tourist.CancelAppointment)
}
