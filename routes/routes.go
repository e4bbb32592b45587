package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sharvill10/TechCart/events"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher) {
	// Public catalog (no middleware)
	SetupProductRoutes(r, db)

	// Identity: register/login/logout/profile
	SetupUserAccountRoutes(r, db)

	// Cart (JWT-protected)
	SetupUserRoutes(r, db)

	// Orders (JWT + admin API key)
	SetupOrderRoutes(r, db, pub)

	// Admin catalog and user management (API-key-protected)
	SetupAdminRoutes(r, db)
}
