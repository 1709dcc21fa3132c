package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopLedger/Models"
)

func TestCreateCustomer(t *testing.T) {
	app, _ := setupTestApp(t)

	customer := createCustomer(t, app, "Ahmed", "0100000000")
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Ahmed", customer.Name)
	assert.Zero(t, customer.TotalCredit)
	assert.Equal(t, "regular", customer.CustomerType)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/customers", fiber.Map{
		"phone": "0100000000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&Models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetCustomersOrderedByName(t *testing.T) {
	app, _ := setupTestApp(t)

	createCustomer(t, app, "Mona", "")
	createCustomer(t, app, "Ahmed", "")

	resp := doRequest(t, app, "GET", "/api/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var customers []Models.Customer
	decodeBody(t, resp, &customers)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ahmed", customers[0].Name)
	assert.Equal(t, "Mona", customers[1].Name)
}
