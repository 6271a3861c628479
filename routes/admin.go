package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/controllers/provider"
	"github.com/wanderlk/tour-api/middleware"
	"github.com/wanderlk/tour-api/models"
)

// SetupAdminRoutes configures user management, RBAC and reporting
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/users", controllers.GetAllUsers)
	admin.Get("/users/:id", controllers.GetUserByID)
	admin.Put("/users/:id", controllers.UpdateUser)
	admin.Delete("/users/:id", controllers.DeleteUser)

	admin.Get("/roles", controllers.GetRoles)
	admin.Get("/permissions", controllers.GetPermissions)
	admin.Put("/roles/:id/permissions", controllers.AssignPermissions)

	admin.Get("/report", controllers.GenerateReport)

	dashboard := app.Group("/api/dashboard", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
	dashboard.Get("/overview", provider.GetDashboardOverview)
}
