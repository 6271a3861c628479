package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/controllers"
	"github.com/wanderlk/tour-api/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/api/review")

	review.Get("/package/:id", controllers.GetPackageReviews)
	review.Get("/provider/:id", controllers.GetProviderReviews)

	review.Post("/", middleware.Protected(), middleware.RequirePermission("reviews", "create"), controllers.CreateReview)
	review.Put("/:id", middleware.Protected(), middleware.RequirePermission("reviews", "update"), controllers.UpdateReview)
	review.Delete("/:id", middleware.Protected(), controllers.DeleteReview)
}
