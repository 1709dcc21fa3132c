package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Root serves the service metadata and endpoint index
func Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Family Shop Management API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"items":     "GET /api/items",
			"add_item":  "POST /api/items",
			"customers": "GET /api/customers",
			"credits":   "GET /api/credits",
			"bottles":   "GET /api/bottles",
			"stats":     "GET /api/stats",
		},
		"status": "active",
	})
}

// Health is the liveness probe
func Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "family-shop-api",
	})
}
