package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/sharvill10/TechCart/controllers/product"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public, read-only catalog.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetCategories(db))
}
