package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItem(t *testing.T, r *gin.Engine, token, id string, price float64, quantity int) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/cart/items", token, gin.H{
		"id": id, "name": "Item " + id, "price": price, "quantity": quantity,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCartTotals(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "alice@example.com")

	addItem(t, r, token, "a", 10, 2)
	addItem(t, r, token, "b", 5, 1)

	w := doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.InDelta(t, 25.0, body["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 2.0, body["tax"].(float64), 1e-9)
	assert.InDelta(t, 27.0, body["total"].(float64), 1e-9)
}

func TestCartQuantityFloor(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "alice@example.com")
	addItem(t, r, token, "a", 10, 1)

	w := doJSON(r, http.MethodPut, "/api/cart/items/a", token, gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The line is still there with quantity 1; removal is its own call.
	w = doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 1)

	w = doJSON(r, http.MethodDelete, "/api/cart/items/a", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = decode(t, w)["items"].([]any)
	assert.Empty(t, items)
}

func TestCheckout(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "alice@example.com")

	w := doJSON(r, http.MethodPost, "/api/cart/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart cannot be checked out")

	addItem(t, r, token, "a", 10, 2)
	w = doJSON(r, http.MethodPost, "/api/cart/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode(t, w)["order"].(map[string]any)
	assert.InDelta(t, 20*1.08, order["total_price"].(float64), 1e-9)

	// Checkout drains the cart.
	w = doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	w = doJSON(r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}
