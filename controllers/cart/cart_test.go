package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sharvill10/TechCart/models"
	"github.com/stretchr/testify/assert"
)

func performJSON(handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, func(c *gin.Context) {
		c.Set("user_id", "u-1")
		handler(c)
	})

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Validation failures must be rejected before any database work; the nil DB
// here would panic otherwise.
func TestUpdateCartItemRejectsBadInput(t *testing.T) {
	w := performJSON(UpdateCartItem(nil), http.MethodPost, "/user/cart", `{"quantity": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")

	w = performJSON(UpdateCartItem(nil), http.MethodPost, "/user/cart", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveShippingAddressRequiresAllFields(t *testing.T) {
	body := `{"address": "1 Main St", "city": "Springfield", "postal_code": "12345"}`
	w := performJSON(SaveShippingAddress(nil), http.MethodPut, "/user/cart/shipping", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Country")
}

func TestSavePaymentMethodRequiresMethod(t *testing.T) {
	w := performJSON(SavePaymentMethod(nil), http.MethodPut, "/user/cart/payment", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartJSONCarriesBreakdown(t *testing.T) {
	cart := models.Cart{}
	cart.AddItem(models.Product{ID: 1, Name: "widget", Price: 10, CountInStock: 5}, 2)

	resp := cartJSON(cart)
	assert.Equal(t, 20.00, resp.ItemsPrice)
	assert.Equal(t, 27.00, resp.TotalPrice)
}
