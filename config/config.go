package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/neo-dine/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBDSN    string

	SessionSecret string
	SessionTTL    time.Duration

	OrderStatusInterval    time.Duration
	PaymentProcessingDelay time.Duration
	ToastTTL               time.Duration
	WizardMaxAge           time.Duration

	RabbitMQURL   string
	OrderExchange string

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigin     string
}

// Load membaca .env (jika ada) lalu environment dengan default untuk development
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found, using environment only")
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "neo_dine.db"),

		SessionSecret: getEnv("SESSION_SECRET", "neo-dine-dev-secret"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),

		OrderStatusInterval:    getDuration("ORDER_STATUS_INTERVAL", 8*time.Second),
		PaymentProcessingDelay: getDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second),
		ToastTTL:               getDuration("TOAST_TTL", 4*time.Second),
		WizardMaxAge:           getDuration("BOOKING_IDLE_TIMEOUT", 30*time.Minute),

		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		OrderExchange: getEnv("ORDER_EXCHANGE", "neo_dine.orders"),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
}

// InitDB membuka koneksi sesuai DB_DRIVER (sqlite untuk lokal, mysql untuk deploy)
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.GinMode == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.ErrorLogger.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.ErrorLogger.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		utils.ErrorLogger.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
