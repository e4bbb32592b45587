package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id uint, price float64, stock int) Product {
	return Product{ID: id, Name: "product", Price: price, CountInStock: stock}
}

func TestCartPricesExampleScenario(t *testing.T) {
	// One item at 10.00 x 2: items 20.00, flat shipping 5, 10% tax 2.00.
	cart := Cart{}
	cart.AddItem(testProduct(1, 10.00, 5), 2)

	p := cart.Prices()
	assert.Equal(t, 20.00, p.ItemsPrice)
	assert.Equal(t, 5.00, p.ShippingPrice)
	assert.Equal(t, 2.00, p.TaxPrice)
	assert.Equal(t, 27.00, p.TotalPrice)
}

func TestCartPricesFreeShippingThreshold(t *testing.T) {
	cart := Cart{}
	cart.AddItem(testProduct(1, 50.00, 10), 2)

	p := cart.Prices()
	assert.Equal(t, 100.00, p.ItemsPrice)
	assert.Equal(t, 0.00, p.ShippingPrice)
	assert.Equal(t, 110.00, p.TotalPrice)
}

func TestCartPricesEmpty(t *testing.T) {
	cart := Cart{}
	p := cart.Prices()
	assert.Equal(t, 0.00, p.ItemsPrice)
	assert.Equal(t, 0.00, p.ShippingPrice)
	assert.Equal(t, 0.00, p.TotalPrice)
}

func TestCartPricesInvariantOverMutations(t *testing.T) {
	cart := Cart{}
	cart.AddItem(testProduct(1, 3.33, 10), 3)
	cart.AddItem(testProduct(2, 19.99, 4), 1)
	cart.AddItem(testProduct(1, 3.33, 10), 5) // update line 1
	cart.RemoveItem(2)
	cart.AddItem(testProduct(3, 0.99, 100), 7)

	var want float64
	for _, it := range cart.Items {
		want += it.Price * float64(it.Qty)
	}
	p := cart.Prices()
	assert.InDelta(t, want, p.ItemsPrice, 0.005)
	assert.InDelta(t, p.ItemsPrice+p.ShippingPrice+p.TaxPrice, p.TotalPrice, 0.005)
}

func TestAddItemClampsToStock(t *testing.T) {
	cart := Cart{}
	item := cart.AddItem(testProduct(1, 10, 3), 99)
	assert.Equal(t, 3, item.Qty)

	item = cart.AddItem(testProduct(1, 10, 3), 0)
	assert.Equal(t, 1, item.Qty)
}

func TestClampQtyZeroStock(t *testing.T) {
	assert.Equal(t, 0, ClampQty(5, 0))
	assert.Equal(t, 0, ClampQty(1, -2))
}

func TestAddItemOutOfStockStoresNoLine(t *testing.T) {
	cart := Cart{}
	item := cart.AddItem(testProduct(1, 10, 0), 5)
	assert.Zero(t, item)
	assert.Empty(t, cart.Items)

	// An existing line is dropped when the product runs out of stock.
	cart.AddItem(testProduct(2, 10, 4), 2)
	cart.AddItem(testProduct(2, 10, 0), 2)
	assert.Empty(t, cart.Items)

	// The invariant holds over every line after any add.
	cart.AddItem(testProduct(3, 10, 7), 99)
	for _, it := range cart.Items {
		assert.LessOrEqual(t, it.Qty, it.CountInStock, "cart line qty exceeds stock")
	}
}

func TestAddItemUpdatesExistingLine(t *testing.T) {
	cart := Cart{}
	cart.AddItem(testProduct(1, 10, 5), 1)
	cart.AddItem(testProduct(1, 12, 5), 2) // price re-synced on update

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, 12.00, cart.Items[0].Price)
}

func TestRemoveItem(t *testing.T) {
	cart := Cart{}
	cart.AddItem(testProduct(1, 10, 5), 1)
	cart.AddItem(testProduct(2, 20, 5), 1)

	assert.True(t, cart.RemoveItem(1))
	assert.False(t, cart.RemoveItem(1))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)
}

func TestClearItemsKeepsCheckoutChoices(t *testing.T) {
	cart := Cart{
		ShippingAddress: Address{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		PaymentMethod:   "PayPal",
	}
	cart.AddItem(testProduct(1, 10, 5), 1)
	cart.ClearItems()

	assert.Empty(t, cart.Items)
	assert.Equal(t, "1 Main St", cart.ShippingAddress.Address)
	assert.Equal(t, "PayPal", cart.PaymentMethod)
}

func TestCheckoutReadyOrdering(t *testing.T) {
	cart := Cart{}
	assert.ErrorIs(t, cart.CheckoutReady(), ErrShippingRequired)

	cart.ShippingAddress = Address{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"}
	assert.ErrorIs(t, cart.CheckoutReady(), ErrPaymentRequired)

	cart.PaymentMethod = "PayPal"
	assert.ErrorIs(t, cart.CheckoutReady(), ErrCartEmpty)

	cart.AddItem(testProduct(1, 10, 5), 1)
	assert.NoError(t, cart.CheckoutReady())
}
