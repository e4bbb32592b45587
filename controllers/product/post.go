package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sharvill10/TechCart/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Brand        string  `json:"brand"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CountInStock int     `json:"count_in_stock" binding:"min=0"`
	CategoryIDs  []uint  `json:"category_ids"`
}

// CreateProduct creates a new product, optionally attached to categories.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
			if len(categories) != len(input.CategoryIDs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more category_ids do not exist"})
				return
			}
		}

		product := models.Product{
			Name:         input.Name,
			Brand:        input.Brand,
			Description:  input.Description,
			Image:        input.Image,
			Price:        input.Price,
			CountInStock: input.CountInStock,
			Categories:   categories,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
