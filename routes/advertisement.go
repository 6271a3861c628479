package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/middleware"
	"github.com/wanderlk/tour-api/models"
)

// SetupAdvertisementRoutes configures all advertisement related routes
func SetupAdvertisementRoutes(app *fiber.App) {
	ads := app.Group("/api/advertisements")

	// Public: active advertisements for the landing page
	ads.Get("/active", controllers.GetActiveAdvertisements)

	admin := ads.Group("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Get("/", controllers.GetAllAdvertisements)
	admin.Post("/", controllers.CreateAdvertisement)
	admin.Put("/:id", controllers.UpdateAdvertisement)
	admin.Put("/:id/toggle", controllers.ToggleAdvertisement)
	admin.Delete("/:id", controllers.DeleteAdvertisement)
}
