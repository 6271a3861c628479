package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wanderlk/tour-api/cron"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/redis"
	"github.com/wanderlk/tour-api/routes"
	"github.com/wanderlk/tour-api/utils"
)

func main() {
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tour management API")
	})

	// Uploaded advertisement images are served by filename
	app.Static("/uploads", utils.UploadDir)

	routes.SetupAuthRoutes(app)
	routes.SetupPackageRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupAdvertisementRoutes(app)
	routes.SetupGuideRoutes(app)
	routes.SetupAdminRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
