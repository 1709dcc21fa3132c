package FiberConfig

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"ShopLedger/Controllers"
	"ShopLedger/middleware"
)

// SetupRoutes registers all API routes against the injected database handle.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	itemController := Controllers.NewItemController(db)
	customerController := Controllers.NewCustomerController(db)
	creditController := Controllers.NewCreditController(db)
	bottleController := Controllers.NewBottleController(db)
	statsController := Controllers.NewStatsController(db)

	app.Get("/", Controllers.Root)
	app.Get("/health", Controllers.Health)

	// API group
	api := app.Group("/api")

	// Item routes
	api.Get("/items", itemController.GetItems)
	api.Post("/items", itemController.CreateItem)
	api.Put("/items/:id/stock", itemController.SetItemStock)

	// Customer routes
	api.Get("/customers", customerController.GetCustomers)
	api.Post("/customers", customerController.CreateCustomer)

	// Credit ledger routes
	api.Get("/credits", creditController.GetCredits)
	api.Post("/credits", creditController.CreateCredit)
	api.Put("/credits/:id/pay", creditController.PayCredit)

	// Bottle ledger routes
	api.Get("/bottles", bottleController.GetBottles)
	api.Post("/bottles", bottleController.CreateBottle)
	api.Put("/bottles/:id/return", bottleController.ReturnBottle)

	// Dashboard
	api.Get("/stats", statsController.GetStats)
}

// NewApp builds the fiber application with its middleware stack. The
// caller owns the listener and the shutdown sequence.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db)

	return app
}
