package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ShopLedger/Models"
)

// ItemController handles inventory API endpoints
type ItemController struct {
	DB *gorm.DB
}

// NewItemController creates a new ItemController
func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// GetItems retrieves all items ordered by name
func (c *ItemController) GetItems(ctx *fiber.Ctx) error {
	var items []Models.Item
	result := c.DB.Order("name").Find(&items)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.JSON(items)
}

// CreateItemInput is the payload for adding an inventory item
type CreateItemInput struct {
	Name         string  `json:"name" validate:"required"`
	BuyingPrice  float64 `json:"buying_price"`
	SellingPrice float64 `json:"selling_price"`
	Stock        int     `json:"stock"`
	Barcode      string  `json:"barcode"`
	Category     string  `json:"category"`
}

// CreateItem adds a new item to the inventory
func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var input CreateItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is a required field"})
	}

	item := Models.Item{
		Name:         input.Name,
		BuyingPrice:  input.BuyingPrice,
		SellingPrice: input.SellingPrice,
		Stock:        input.Stock,
		Barcode:      input.Barcode,
		Category:     input.Category,
	}

	if result := c.DB.Create(&item); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// SetStockInput carries the absolute stock count, not an increment
type SetStockInput struct {
	Stock *int `json:"stock" validate:"required"`
}

// SetItemStock sets an item's stock to the given value
func (c *ItemController) SetItemStock(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var input SetStockInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Stock is a required field"})
	}

	var item Models.Item
	if result := c.DB.First(&item, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	if result := c.DB.Model(&item).Update("stock", *input.Stock); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.JSON(item)
}
