package main

import (
	"log"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/bank"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/dashboard"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/events"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/notifications"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/payments"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/scholarships"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/students"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// errorHandler renders every unhandled error as a JSON response.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Wire the background services
	stores := database.NewStores(config.GetDB())
	hub := services.NewBroadcast()
	defer hub.Close()

	reconciler := services.NewReconciler(stores, stores, stores)
	watcher := services.NewWatcher(stores, hub)
	intake := services.NewPaymentIntake(stores)

	scheduler, err := services.NewScheduler(reconciler, watcher,
		config.AppConfig.ReconcileCron, config.AppConfig.WatcherInterval)
	if err != nil {
		log.Fatal("Invalid scheduler configuration: ", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler: ", err)
	}
	defer scheduler.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fee Management System Backend Running")
	})

	// Routes
	students.SetupStudentRoutes(app)
	payments.SetupPaymentRoutes(app, intake)
	dashboard.SetupDashboardRoutes(app, reconciler)
	notifications.SetupNotificationRoutes(app)
	bank.SetupBankRoutes(app)
	scholarships.SetupScholarshipRoutes(app)
	events.SetupEventRoutes(app, hub)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
