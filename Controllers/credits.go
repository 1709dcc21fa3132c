package Controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ShopLedger/Models"
)

// CreditController handles the store-credit ledger. Every write here
// pairs a ledger row with an adjustment of the owning customer's
// total_credit, so both statements always run inside one transaction.
type CreditController struct {
	DB *gorm.DB
}

// NewCreditController creates a new CreditController
func NewCreditController(db *gorm.DB) *CreditController {
	return &CreditController{DB: db}
}

// CreditRow is a ledger entry joined with its customer's contact data.
// Name and phone stay null when the customer reference is dangling.
type CreditRow struct {
	ID              uint       `json:"id"`
	CustomerID      uint       `json:"customer_id"`
	ItemName        string     `json:"item_name"`
	Quantity        int        `json:"quantity"`
	Amount          float64    `json:"amount"`
	TransactionDate time.Time  `json:"transaction_date"`
	DueDate         *time.Time `json:"due_date"`
	Paid            bool       `json:"paid"`
	Notes           string     `json:"notes"`
	CustomerName    *string    `json:"customer_name"`
	Phone           *string    `json:"phone"`
}

// GetCredits retrieves all credit transactions, newest first
func (c *CreditController) GetCredits(ctx *fiber.Ctx) error {
	var rows []CreditRow
	result := c.DB.Model(&Models.CreditTransaction{}).
		Select("credit_transactions.*, customers.name AS customer_name, customers.phone AS phone").
		Joins("LEFT JOIN customers ON customers.id = credit_transactions.customer_id").
		Order("credit_transactions.transaction_date DESC").
		Scan(&rows)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.JSON(rows)
}

// CreateCreditInput is the payload for granting store credit
type CreateCreditInput struct {
	CustomerID uint    `json:"customer_id" validate:"required"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date"`
	Notes      string  `json:"notes"`
}

// CreateCredit grants credit to a customer. The ledger insert and the
// balance increment commit or roll back together; a crash between them
// must never leave a ledger row without its balance.
func (c *CreditController) CreateCredit(ctx *fiber.Ctx) error {
	var input CreateCreditInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer ID is a required field"})
	}

	var dueDate *time.Time
	if input.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", input.DueDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due date format. Use YYYY-MM-DD"})
		}
		dueDate = &parsed
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	transaction := Models.CreditTransaction{
		CustomerID:      input.CustomerID,
		ItemName:        input.ItemName,
		Quantity:        quantity,
		Amount:          input.Amount,
		TransactionDate: time.Now(),
		DueDate:         dueDate,
		Notes:           input.Notes,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var customer Models.Customer
		if err := tx.First(&customer, input.CustomerID).Error; err != nil {
			return err
		}

		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		// SQL-side arithmetic so concurrent grants never lose updates.
		return tx.Model(&Models.Customer{}).
			Where("id = ?", input.CustomerID).
			Update("total_credit", gorm.Expr("total_credit + ?", input.Amount)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(transaction)
}

// PayCredit settles a credit transaction and reduces the customer's
// balance by the original amount. Settling an already-paid transaction
// is a no-op; the conditional update on paid=false guarantees the
// balance is decremented at most once even under concurrent calls.
func (c *CreditController) PayCredit(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var transaction Models.CreditTransaction
	txErr := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transaction, id).Error; err != nil {
			return err
		}

		if transaction.Paid {
			return nil
		}

		result := tx.Model(&Models.CreditTransaction{}).
			Where("id = ? AND paid = ?", id, false).
			Update("paid", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Another settle won the race; the balance was already adjusted.
			transaction.Paid = true
			return nil
		}

		transaction.Paid = true
		return tx.Model(&Models.Customer{}).
			Where("id = ?", transaction.CustomerID).
			Update("total_credit", gorm.Expr("total_credit - ?", transaction.Amount)).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": txErr.Error()})
	}

	return ctx.JSON(transaction)
}
