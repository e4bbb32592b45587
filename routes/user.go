package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sharvill10/TechCart/controllers/cart"
	"github.com/sharvill10/TechCart/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
			cartGroup.PUT("/shipping", cartControllers.SaveShippingAddress(db))
			cartGroup.PUT("/payment", cartControllers.SavePaymentMethod(db))
		}
	}
}
