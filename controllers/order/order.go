package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharvill10/TechCart/events"
	"github.com/sharvill10/TechCart/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// checkoutStep names the incomplete checkout stage so the client can route
// the user back to it.
func checkoutStep(err error) string {
	switch {
	case errors.Is(err, models.ErrShippingRequired):
		return "shipping"
	case errors.Is(err, models.ErrPaymentRequired):
		return "payment"
	default:
		return "cart"
	}
}

// PlaceOrder snapshots the user's cart into an order. Runs as one
// transaction: products are locked, stock verified and deducted, order
// created, cart lines removed. Shipping address and payment method stay on
// the cart for next time.
func PlaceOrder(db *gorm.DB, userID string) (models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.Order{}, err
	}
	if err := cart.CheckoutReady(); err != nil {
		return models.Order{}, err
	}

	order := models.OrderFromCart(&cart)

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.CountInStock < item.Qty {
				return fmt.Errorf("%w for product: %s", ErrInsufficientStock, item.Name)
			}

			product.CountInStock -= item.Qty
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Only the lines go; address and method are kept on the cart.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := PlaceOrder(db, userID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrShippingRequired),
				errors.Is(err, models.ErrPaymentRequired),
				errors.Is(err, models.ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "step": checkoutStep(err)})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastOrderEvent("order_placed", order)
		if err := pub.PublishOrder(order); err != nil {
			log.Printf("⚠️ fulfillment publish failed for order %s: %v", order.OrderRef, err)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/mine
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// orderLookup matches a path param against the right column: numeric means
// the primary key, anything else is an order ref (refs are never numeric).
func orderLookup(id string) (string, interface{}) {
	if n, err := strconv.Atoi(id); err == nil {
		return "id = ?", n
	}
	return "order_ref = ?", id
}

// findOrder resolves a path param that may be a numeric id or an order ref.
func findOrder(db *gorm.DB, id string) (models.Order, error) {
	cond, val := orderLookup(id)
	var order models.Order
	err := db.
		Preload("Items").
		Where(cond, val).
		First(&order).Error
	return order, err
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		userID := c.GetString("user_id")
		isAdmin := c.GetBool("is_admin")

		order, err := findOrder(db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != userID && !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/pay
// Trusts the caller that payment happened; there is no gateway verification.
func PayOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateOrderStatus(c, db, "order_paid", func(o *models.Order) error {
			return o.MarkPaid(time.Now())
		})
	}
}

// PUT /orders/:orderID/deliver (admin)
func DeliverOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateOrderStatus(c, db, "order_delivered", func(o *models.Order) error {
			return o.MarkDelivered(time.Now())
		})
	}
}

// updateOrderStatus applies a guarded transition inside a transaction with
// the order row locked, so two concurrent admins cannot both win.
func updateOrderStatus(c *gin.Context, db *gorm.DB, event string, transition func(*models.Order) error) {
	id := c.Param("orderID")

	cond, val := orderLookup(id)
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Where(cond, val).
			First(&order).Error; err != nil {
			return err
		}
		if err := transition(&order); err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"is_paid":      order.IsPaid,
			"paid_at":      order.PaidAt,
			"is_delivered": order.IsDelivered,
			"delivered_at": order.DeliveredAt,
		}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, models.ErrOrderAlreadyPaid),
			errors.Is(err, models.ErrOrderNotPaid),
			errors.Is(err, models.ErrOrderAlreadyDelivered):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	broadcastOrderEvent(event, order)
	c.JSON(http.StatusOK, order)
}
