package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Brand        string         `json:"brand"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	Price        float64        `gorm:"not null" json:"price"`
	CountInStock int            `json:"count_in_stock"`
	Categories   []Category     `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
