package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ShopLedger/Models"
)

// StatsController serves the dashboard summary
type StatsController struct {
	DB *gorm.DB
}

// NewStatsController creates a new StatsController
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// Stats is the dashboard summary payload
type Stats struct {
	TotalItems     int64 `json:"total_items"`
	TotalCustomers int64 `json:"total_customers"`
	PendingCredits int64 `json:"pending_credits"`
	PendingBottles int64 `json:"pending_bottles"`
}

// GetStats returns counts over all four collections
func (c *StatsController) GetStats(ctx *fiber.Ctx) error {
	var stats Stats

	if err := c.DB.Model(&Models.Item{}).Count(&stats.TotalItems).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&Models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&Models.CreditTransaction{}).Where("paid = ?", false).Count(&stats.PendingCredits).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&Models.Bottle{}).Where("returned = ?", false).Count(&stats.PendingBottles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(stats)
}
