package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderAlreadyPaid      = errors.New("order is already paid")
	ErrOrderNotPaid          = errors.New("order is not paid yet")
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// Order freezes the cart at placement time: items, address, method and the
// price breakdown are copied and never change afterwards. Only the payment
// and delivery flags move, through the guarded transitions below.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string      `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	ItemsPrice      float64     `json:"items_price"`
	ShippingPrice   float64     `json:"shipping_price"`
	TaxPrice        float64     `json:"tax_price"`
	TotalPrice      float64     `json:"total_price"`
	IsPaid          bool        `json:"is_paid"`
	PaidAt          *time.Time  `json:"paid_at"`
	IsDelivered     bool        `json:"is_delivered"`
	DeliveredAt     *time.Time  `json:"delivered_at"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// NewOrderRef generates a sortable unique order reference.
// Example: 20250908130500-<uuid4>
func NewOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// OrderFromCart snapshots the cart into a new unpaid, undelivered order.
// The price breakdown is recomputed server-side; client-sent totals are
// never trusted.
func OrderFromCart(c *Cart) Order {
	prices := c.Prices()
	items := make([]OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Price:     it.Price,
			Qty:       it.Qty,
		})
	}
	return Order{
		OrderRef:        NewOrderRef(),
		UserID:          c.UserID,
		Items:           items,
		ShippingAddress: c.ShippingAddress,
		PaymentMethod:   c.PaymentMethod,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
		CreatedAt:       time.Now(),
	}
}

// MarkPaid records payment confirmation. Paying twice is rejected so a
// double-submitted confirmation cannot move the timestamp.
func (o *Order) MarkPaid(at time.Time) error {
	if o.IsPaid {
		return ErrOrderAlreadyPaid
	}
	o.IsPaid = true
	o.PaidAt = &at
	return nil
}

// MarkDelivered records fulfillment. Delivering an unpaid order is rejected.
func (o *Order) MarkDelivered(at time.Time) error {
	if !o.IsPaid {
		return ErrOrderNotPaid
	}
	if o.IsDelivered {
		return ErrOrderAlreadyDelivered
	}
	o.IsDelivered = true
	o.DeliveredAt = &at
	return nil
}
