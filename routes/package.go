package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/middleware"
	"github.com/wanderlk/tour-api/models"
)

// SetupPackageRoutes configures all tour package related routes
func SetupPackageRoutes(app *fiber.App) {
	pkg := app.Group("/api/packages")

	pkg.Get("/", controllers.GetAllPackages)
	pkg.Get("/:id", controllers.GetPackage)
	pkg.Get("/provider/:id", controllers.GetPackagesByProvider)

	pkg.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), controllers.CreatePackage)
	pkg.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), controllers.UpdatePackage)
	pkg.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), controllers.DeletePackage)
}
