package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel   string
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StripeSecretKey string

	KafkaHost              string
	KafkaOrderChangedTopic string

	RetryAttempts       int
	PendingOrderTTL     time.Duration
	ExpiryBatchSize     int
	ExpirySchedule      string
	SwaggerEnabled      bool
	ShutdownGracePeriod time.Duration
}

// DSN renders the Postgres connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
