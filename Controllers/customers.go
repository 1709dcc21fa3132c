package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ShopLedger/Models"
)

// CustomerController handles customer registry API endpoints
type CustomerController struct {
	DB *gorm.DB
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetCustomers retrieves all customers ordered by name
func (c *CustomerController) GetCustomers(ctx *fiber.Ctx) error {
	var customers []Models.Customer
	result := c.DB.Order("name").Find(&customers)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.JSON(customers)
}

// CreateCustomerInput is the payload for registering a customer
type CreateCustomerInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CustomerType string `json:"customer_type"`
}

// CreateCustomer registers a new customer with a zero credit balance
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input CreateCustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is a required field"})
	}

	customer := Models.Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		CustomerType: input.CustomerType,
	}
	if customer.CustomerType == "" {
		customer.CustomerType = "regular"
	}

	if result := c.DB.Create(&customer); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(customer)
}
