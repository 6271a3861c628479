package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/middleware"
	"github.com/wanderlk/tour-api/models"
)

// SetupGuideRoutes configures guide availability and assignment routes
func SetupGuideRoutes(app *fiber.App) {
	guide := app.Group("/api/guideassign", middleware.Protected())

	guide.Post("/availability", middleware.RequireRole(models.RoleGuide), controllers.SetAvailability)
	guide.Get("/availability/:id", controllers.GetGuideAvailability)
	guide.Get("/available", middleware.RequireRole(models.RoleAdmin, models.RoleGuide), controllers.GetAvailableGuides)

	guide.Post("/add", middleware.RequirePermission("guides", "manage"), controllers.AssignGuide)
	guide.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleGuide), controllers.GetAssignments)
	guide.Put("/:id/status", middleware.RequireRole(models.RoleAdmin, models.RoleGuide), controllers.UpdateAssignmentStatus)
}
