// internal/interfaces/http/routes/routes_test.go
package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

func setupRouter(t *testing.T) (*gin.Engine, *product.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:  config.AppConfig{Environment: "test"},
		Cart: config.CartConfig{SoftLineLimit: 10},
		Order: config.OrderConfig{
			EstimatedDeliveryDays: 5,
			PendingExpiry:         7 * 24 * time.Hour,
		},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	catalog := product.NewRepository()
	productService := product.NewService(catalog, cfg)
	engine := order.NewService(cfg, log, catalog, payment.NewService(log))

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), productService, engine, cfg)
	return router, catalog
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func seedWidget(t *testing.T, catalog *product.Repository, price float64, stock int) *product.Product {
	t.Helper()
	p, err := catalog.Save(&product.Product{
		Name:     "Widget",
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		Category: "Electronics",
		IsActive: true,
	})
	require.NoError(t, err)
	return p
}

func TestProductCRUD(t *testing.T) {
	router, _ := setupRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Laptop","description":"High-performance laptop","price":"999.99","stock":10,"category":"Electronics"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), created["id"])

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	fetched := resp["data"].(map[string]interface{})
	assert.Equal(t, "Laptop", fetched["name"])

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/api/v1/products/1", `{"stock":25}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/v1/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartCheckoutFlow(t *testing.T) {
	router, catalog := setupRouter(t)
	p := seedWidget(t, catalog, 60, 5)

	// Create a cart for user 1.
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/carts", `{"user_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	cartData := resp["data"].(map[string]interface{})
	cartID := int(cartData["id"].(float64))
	require.Equal(t, 1, cartID)

	// Add two widgets.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/carts/1/items",
		`{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Cart shows the undiscounted subtotal.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/carts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "120", data["subtotal"])
	assert.Equal(t, float64(2), data["total_items"])

	// Checkout applies the bulk discount once.
	w, resp = doJSON(t, router, http.MethodPost, "/api/v1/orders",
		`{"cart_id":1,"shipping_address":"123 Main St"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	orderData := resp["data"].(map[string]interface{})
	assert.Equal(t, "114", orderData["total_amount"])
	assert.Equal(t, "pending", orderData["status"])

	// Stock was committed and the cart is gone.
	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/carts/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Reading the order flips it to viewed.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/orders/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewed", resp["data"].(map[string]interface{})["status"])
}

func TestCheckoutInsufficientStockOverHTTP(t *testing.T) {
	router, catalog := setupRouter(t)
	p := seedWidget(t, catalog, 10, 1)

	doJSON(t, router, http.MethodPost, "/api/v1/carts", `{"user_id":1}`)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/carts/1/items",
		`{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/orders",
		`{"cart_id":1,"shipping_address":"123 Main St"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, float64(p.ID), resp["product_id"])

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	// The cart is still there for a retry.
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/carts/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderLifecycleAndReports(t *testing.T) {
	router, catalog := setupRouter(t)
	seedWidget(t, catalog, 30, 10)

	// First order: ship and deliver.
	doJSON(t, router, http.MethodPost, "/api/v1/carts", `{"user_id":1}`)
	doJSON(t, router, http.MethodPost, "/api/v1/carts/1/items", `{"product_id":1,"quantity":1}`)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"cart_id":1,"shipping_address":"123 Main St"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, "/api/v1/orders/1/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPut, "/api/v1/orders/1/status", `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Delivered orders cannot be cancelled.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/orders/1/cancel", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Second order: cancel it.
	doJSON(t, router, http.MethodPost, "/api/v1/carts", `{"user_id":1}`)
	doJSON(t, router, http.MethodPost, "/api/v1/carts/2/items", `{"product_id":1,"quantity":2}`)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"cart_id":2,"shipping_address":"123 Main St"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/2/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["data"].(map[string]interface{})["cancelled"])

	// Revenue excludes the cancelled order, sales counts the delivered one.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/admin/reports/revenue", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30", resp["data"].(map[string]interface{})["total_revenue"])

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/admin/reports/sales", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30", resp["data"].(map[string]interface{})["total_sales"])

	// Listing user orders returns both, oldest first.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/orders?user_id=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	orders := resp["data"].([]interface{})
	require.Len(t, orders, 2)
	assert.Equal(t, float64(1), orders[0].(map[string]interface{})["id"])

	// Reset wipes everything.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/admin/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/orders/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidStatusLabelOverHTTP(t *testing.T) {
	router, catalog := setupRouter(t)
	seedWidget(t, catalog, 30, 10)

	doJSON(t, router, http.MethodPost, "/api/v1/carts", `{"user_id":1}`)
	doJSON(t, router, http.MethodPost, "/api/v1/carts/1/items", `{"product_id":1,"quantity":1}`)
	doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"cart_id":1,"shipping_address":"123 Main St"}`)

	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/orders/1/status", `{"status":"CANCEL"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
