package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sharvill10/TechCart/auth"
	userControllers "github.com/sharvill10/TechCart/controllers/user"
	"github.com/sharvill10/TechCart/middleware"
	"gorm.io/gorm"
)

// SetupUserAccountRoutes registers identity endpoints: register, login,
// logout and the JWT-protected profile.
func SetupUserAccountRoutes(r *gin.Engine, db *gorm.DB) {
	usersGroup := r.Group("/users")
	{
		usersGroup.POST("/register", auth.RegisterHandler(db))
		usersGroup.POST("/login", auth.LoginHandler(db))
		usersGroup.POST("/logout", auth.LogoutHandler())

		profile := usersGroup.Group("/profile")
		profile.Use(middleware.ValidateToken)
		{
			profile.GET("", userControllers.GetProfile(db))
			profile.PUT("", userControllers.UpdateProfile(db))
		}
	}
}
