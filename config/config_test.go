package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fulfillment_orders", cfg.RabbitMQQueue)
	assert.Equal(t, 10, cfg.ChannelPoolSize)
	assert.Equal(t, 30, cfg.CartRetentionDays)
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://u:p@host/db"}
	assert.Equal(t, "postgres://u:p@host/db", cfg.DSN())
}

func TestDSNFromParts(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5433", DBUser: "cart", DBPassword: "s3cret", DBName: "techcart"}
	assert.Equal(t,
		"host=db user=cart password=s3cret dbname=techcart port=5433 sslmode=disable",
		cfg.DSN())
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("CHANNEL_POOL_SIZE", "not-a-number")
	assert.Equal(t, 10, Load().ChannelPoolSize)

	t.Setenv("CHANNEL_POOL_SIZE", "4")
	assert.Equal(t, 4, Load().ChannelPoolSize)
}
