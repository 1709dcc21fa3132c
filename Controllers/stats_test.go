package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/items", fiber.Map{"name": "Lays Chips"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, app, "POST", "/api/items", fiber.Map{"name": "Sugar 1kg"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	customer := createCustomer(t, app, "Ahmed", "0100000000")

	paid := grantCredit(t, app, customer.ID, 200)
	grantCredit(t, app, customer.ID, 500)
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/credits/%d/pay", paid.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	returned := createBottle(t, app, customer.ID, "1L glass")
	createBottle(t, app, customer.ID, "500ml glass")
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/bottles/%d/return", returned.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalItems     int64 `json:"total_items"`
		TotalCustomers int64 `json:"total_customers"`
		PendingCredits int64 `json:"pending_credits"`
		PendingBottles int64 `json:"pending_bottles"`
	}
	decodeBody(t, resp, &stats)
	assert.Equal(t, int64(2), stats.TotalItems)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.PendingCredits)
	assert.Equal(t, int64(1), stats.PendingBottles)
}

func TestRootAndHealth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var meta struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	decodeBody(t, resp, &meta)
	assert.NotEmpty(t, meta.Message)
	assert.Equal(t, "GET /api/stats", meta.Endpoints["stats"])

	resp = doRequest(t, app, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Service   string `json:"service"`
	}
	decodeBody(t, resp, &health)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "family-shop-api", health.Service)
	assert.NotEmpty(t, health.Timestamp)
}
