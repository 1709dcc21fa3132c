package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ShopLedger/FiberConfig"
	"ShopLedger/Models"
)

// setupTestApp wires the full route table against a fresh in-memory
// database. The pool is pinned to one connection so every request and
// every transaction sees the same sqlite memory instance.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Models.Migrate(db))

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createCustomer(t *testing.T, app *fiber.App, name, phone string) Models.Customer {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/customers", fiber.Map{
		"name":  name,
		"phone": phone,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var customer Models.Customer
	decodeBody(t, resp, &customer)
	return customer
}

func fetchCustomer(t *testing.T, db *gorm.DB, id uint) Models.Customer {
	t.Helper()

	var customer Models.Customer
	require.NoError(t, db.First(&customer, id).Error)
	return customer
}
