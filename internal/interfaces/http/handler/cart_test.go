package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appcart "github.com/coffeehouse/backend/internal/application/cart"
	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/infrastructure/cache"
	"github.com/coffeehouse/backend/internal/infrastructure/event"
	"github.com/coffeehouse/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newCartRouter wires a real cart service over an in-memory store, with
// the authenticated user injected by a test middleware
func newCartRouter(userID uuid.UUID) *gin.Engine {
	logger := zap.NewNop()
	service := appcart.NewCartService(
		cache.NewInMemoryCartStore(),
		event.NewInMemoryEventBus(logger),
		cart.DefaultPricingPolicy(),
		logger,
	)
	h := NewCartHandler(service, logger)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
	})
	engine.GET("/cart", h.Get)
	engine.DELETE("/cart", h.Clear)
	engine.POST("/cart/items", h.AddItem)
	engine.PUT("/cart/items/:product_id", h.SetQuantity)
	engine.DELETE("/cart/items/:product_id", h.RemoveItem)
	engine.GET("/cart/totals", h.Totals)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func addItemBody(quantity int64) map[string]interface{} {
	return map[string]interface{}{
		"product_id": "flat-white",
		"name":       "Flat White",
		"price":      "4.50",
		"category":   "coffee",
		"quantity":   quantity,
	}
}

func TestCartHandlerGetEmpty(t *testing.T) {
	engine := newCartRouter(uuid.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.EqualValues(t, 0, data["item_count"])
}

func TestCartHandlerAddItemMergesQuantity(t *testing.T) {
	engine := newCartRouter(uuid.New())

	w := postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(2))
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(3))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.EqualValues(t, 5, items[0].(map[string]interface{})["quantity"])
}

func TestCartHandlerAddItemRejectsMissingFields(t *testing.T) {
	engine := newCartRouter(uuid.New())

	w := postJSON(t, engine, http.MethodPost, "/cart/items", map[string]interface{}{
		"quantity": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestCartHandlerSetQuantityRemovesAtZero(t *testing.T) {
	engine := newCartRouter(uuid.New())
	postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(2))

	w := postJSON(t, engine, http.MethodPut, "/cart/items/flat-white", map[string]interface{}{
		"quantity": 0,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Empty(t, data["items"])
}

func TestCartHandlerRemoveMissingItemIsNoop(t *testing.T) {
	engine := newCartRouter(uuid.New())
	postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(1))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/espresso", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Len(t, data["items"], 1)
}

func TestCartHandlerTotals(t *testing.T) {
	engine := newCartRouter(uuid.New())
	postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(2))

	tests := []struct {
		name        string
		query       string
		deliveryFee string
		total       string
	}{
		{"pickup by default", "", "0", "9.9"},
		{"delivery adds fee", "?order_type=delivery", "5.99", "15.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart/totals"+tt.query, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			data := decodeResponse(t, w).Data.(map[string]interface{})
			assert.Equal(t, "9", data["subtotal"])
			assert.Equal(t, "0.9", data["tax"])
			assert.Equal(t, tt.deliveryFee, data["delivery_fee"])
			assert.Equal(t, tt.total, data["total"])
		})
	}
}

func TestCartHandlerTotalsRejectsUnknownOrderType(t *testing.T) {
	engine := newCartRouter(uuid.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart/totals?order_type=drone", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ORDER_TYPE", resp.Error.Code)
}

func TestCartHandlerClear(t *testing.T) {
	engine := newCartRouter(uuid.New())
	postJSON(t, engine, http.MethodPost, "/cart/items", addItemBody(2))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Empty(t, data["items"])
}

func TestCartHandlerIsolatedPerUser(t *testing.T) {
	// Two engines share nothing; each carries its own store, which mirrors
	// per-user keying in the real store
	userA := uuid.New()
	logger := zap.NewNop()
	store := cache.NewInMemoryCartStore()
	service := appcart.NewCartService(store, event.NewInMemoryEventBus(logger), cart.DefaultPricingPolicy(), logger)

	newEngine := func(userID uuid.UUID) *gin.Engine {
		h := NewCartHandler(service, logger)
		engine := gin.New()
		engine.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, userID)
		})
		engine.GET("/cart", h.Get)
		engine.POST("/cart/items", h.AddItem)
		return engine
	}

	engineA := newEngine(userA)
	engineB := newEngine(uuid.New())

	postJSON(t, engineA, http.MethodPost, "/cart/items", addItemBody(2))

	w := httptest.NewRecorder()
	engineB.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Empty(t, data["items"], "user B must not see user A's cart")
}
