package models

import (
	"errors"
	"math"
	"time"
)

// Pricing rules applied to every cart and order. Shipping is a flat rate
// waived above the threshold; tax is charged on the items subtotal.
const (
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 5.0
	TaxRate               = 0.10
)

var (
	ErrShippingRequired = errors.New("shipping address is incomplete")
	ErrPaymentRequired  = errors.New("payment method is not selected")
	ErrCartEmpty        = errors.New("cart is empty")
)

type Cart struct {
	CartID          uint       `gorm:"primaryKey" json:"cart_id"`
	UserID          string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items           []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address    `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentMethod   string     `json:"payment_method"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CartItem is a snapshot of the product at the time it was added. Price and
// stock are re-synced whenever the line is updated, never on read.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"`
	ProductID    uint      `json:"product_id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	CountInStock int       `json:"count_in_stock"`
	Qty          int       `json:"qty"`
	AddedAt      time.Time `json:"added_at"`
}

// PriceBreakdown is derived from cart or order items and never stored for
// carts; the order keeps its own copy frozen at placement time.
type PriceBreakdown struct {
	ItemsPrice    float64 `json:"items_price"`
	ShippingPrice float64 `json:"shipping_price"`
	TaxPrice      float64 `json:"tax_price"`
	TotalPrice    float64 `json:"total_price"`
}

// ClampQty bounds a requested quantity to [1, stock]. Requests above stock
// are silently clamped rather than rejected. A product with no stock clamps
// to zero: the line cannot exist at all.
func ClampQty(qty, stock int) int {
	if stock <= 0 {
		return 0
	}
	if qty > stock {
		return stock
	}
	if qty < 1 {
		return 1
	}
	return qty
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// AddItem inserts a new line for the product or updates the quantity of the
// existing one, re-snapshotting price and stock. Returns the resulting line.
// When the product has no stock the line is removed instead, keeping the
// invariant that qty never exceeds stock.
func (c *Cart) AddItem(p Product, qty int) CartItem {
	qty = ClampQty(qty, p.CountInStock)
	if qty == 0 {
		c.RemoveItem(p.ID)
		return CartItem{}
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Price = p.Price
			c.Items[i].CountInStock = p.CountInStock
			c.Items[i].Qty = qty
			c.Items[i].AddedAt = time.Now()
			return c.Items[i]
		}
	}
	item := CartItem{
		CartID:       c.CartID,
		ProductID:    p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		Qty:          qty,
		AddedAt:      time.Now(),
	}
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem deletes the line for the product. Reports whether a line existed.
func (c *Cart) RemoveItem(productID uint) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearItems empties the cart lines. Shipping address and payment method
// survive a clear so a returning customer does not re-enter them.
func (c *Cart) ClearItems() {
	c.Items = nil
}

// Prices recomputes the breakdown from the current lines. An empty cart
// owes nothing, shipping included.
func (c *Cart) Prices() PriceBreakdown {
	var items float64
	for _, it := range c.Items {
		items += it.Price * float64(it.Qty)
	}
	items = roundCents(items)

	shipping := FlatShippingRate
	if items >= FreeShippingThreshold || len(c.Items) == 0 {
		shipping = 0
	}
	tax := roundCents(items * TaxRate)

	return PriceBreakdown{
		ItemsPrice:    items,
		ShippingPrice: shipping,
		TaxPrice:      tax,
		TotalPrice:    roundCents(items + shipping + tax),
	}
}

// CheckoutReady reports the first unmet checkout precondition, in the order
// the checkout flow collects them: shipping, then payment, then items.
func (c *Cart) CheckoutReady() error {
	if c.ShippingAddress.Address == "" {
		return ErrShippingRequired
	}
	if c.PaymentMethod == "" {
		return ErrPaymentRequired
	}
	if len(c.Items) == 0 {
		return ErrCartEmpty
	}
	return nil
}
