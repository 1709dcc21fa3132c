package Controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ShopLedger/Models"
)

// BottleController handles the returnable-bottle ledger
type BottleController struct {
	DB *gorm.DB
}

// NewBottleController creates a new BottleController
func NewBottleController(db *gorm.DB) *BottleController {
	return &BottleController{DB: db}
}

// BottleRow is a bottle record joined with its customer's contact data
type BottleRow struct {
	ID            uint       `json:"id"`
	CustomerID    uint       `json:"customer_id"`
	BottleType    string     `json:"bottle_type"`
	Quantity      int        `json:"quantity"`
	TakenDate     time.Time  `json:"taken_date"`
	Returned      bool       `json:"returned"`
	ReturnedDate  *time.Time `json:"returned_date"`
	DepositAmount float64    `json:"deposit_amount"`
	Notes         string     `json:"notes"`
	CustomerName  string     `json:"customer_name"`
	Phone         *string    `json:"phone"`
}

// GetBottles retrieves bottle records, newest first. Pass
// ?pending=true to restrict the listing to bottles still out.
func (c *BottleController) GetBottles(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.Bottle{}).
		Select("bottles.*, COALESCE(customers.name, 'Unknown') AS customer_name, customers.phone AS phone").
		Joins("LEFT JOIN customers ON customers.id = bottles.customer_id").
		Order("bottles.taken_date DESC")

	if ctx.Query("pending") == "true" {
		query = query.Where("bottles.returned = ?", false)
	}

	var rows []BottleRow
	if result := query.Scan(&rows); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.JSON(rows)
}

// CreateBottleInput is the payload for handing out bottles
type CreateBottleInput struct {
	CustomerID    uint    `json:"customer_id" validate:"required"`
	BottleType    string  `json:"bottle_type" validate:"required"`
	Quantity      int     `json:"quantity"`
	DepositAmount float64 `json:"deposit_amount"`
	Notes         string  `json:"notes"`
}

// CreateBottle records bottles handed out to a customer
func (c *BottleController) CreateBottle(ctx *fiber.Ctx) error {
	var input CreateBottleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer ID and bottle type are required fields"})
	}

	var customer Models.Customer
	if err := c.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	bottle := Models.Bottle{
		CustomerID:    input.CustomerID,
		BottleType:    input.BottleType,
		Quantity:      quantity,
		TakenDate:     time.Now(),
		DepositAmount: input.DepositAmount,
		Notes:         input.Notes,
	}

	if result := c.DB.Create(&bottle); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(bottle)
}

// ReturnBottle marks a bottle record as returned and stamps the return
// date. Returning an already-returned record is a no-op.
func (c *BottleController) ReturnBottle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bottle ID"})
	}

	var bottle Models.Bottle
	if result := c.DB.First(&bottle, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bottle record not found"})
	}

	if !bottle.Returned {
		now := time.Now()
		result := c.DB.Model(&bottle).Updates(map[string]interface{}{
			"returned":      true,
			"returned_date": &now,
		})
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
		}
		bottle.Returned = true
		bottle.ReturnedDate = &now
	}

	return ctx.JSON(bottle)
}
