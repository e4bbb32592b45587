package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sharvill10/TechCart/config"
	"github.com/sharvill10/TechCart/events"
	"github.com/sharvill10/TechCart/models"
	"github.com/sharvill10/TechCart/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Fulfillment events are optional; the API runs without a broker.
	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		pool, err := events.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			log.Fatalf("❌ RabbitMQ setup failed: %v", err)
		}
		defer pool.Close()
		publisher = events.NewPublisher(pool, cfg.RabbitMQQueue)
	} else {
		log.Println("ℹ️ RABBITMQ_URL not set, fulfillment events disabled")
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, publisher)

	// Prune abandoned cart lines daily at 3 AM
	go startDailyCartCleanup(db, cfg.CartRetentionDays, 3, 0)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// startDailyCartCleanup deletes cart lines untouched for retentionDays,
// daily at a fixed hour. Carts themselves stay; only stale lines go.
func startDailyCartCleanup(db *gorm.DB, retentionDays, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next cart cleanup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		result := db.Where("added_at < ?", cutoff).Delete(&models.CartItem{})
		if result.Error != nil {
			log.Printf("❌ Cart cleanup failed: %v", result.Error)
		} else if result.RowsAffected > 0 {
			log.Printf("✅ Cart cleanup removed %d stale lines", result.RowsAffected)
		}
	}
}
