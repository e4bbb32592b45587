package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sharvill10/TechCart/controllers/order"
	"github.com/sharvill10/TechCart/events"
	"github.com/sharvill10/TechCart/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Admin views and transitions (API key)
		orders.GET("", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(db))
		orders.PUT("/:orderID/deliver", middleware.ValidateAPIKey, orderControllers.DeliverOrderHandler(db))

		// User endpoints (JWT)
		authed := orders.Group("")
		authed.Use(middleware.ValidateToken)
		{
			authed.POST("", orderControllers.PlaceOrderHandler(db, pub))
			authed.GET("/mine", orderControllers.GetMyOrdersHandler(db))
			authed.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			authed.PUT("/:orderID/pay", orderControllers.PayOrderHandler(db))
		}
	}
}
