// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"guesthouse-ops-service/internal/domain/entity"

	"github.com/joho/godotenv"
)

// Ledger backends
const (
	LedgerMemory = "memory"
	LedgerRedis  = "redis"
	LedgerMongo  = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string
	Timezone   string
	Location   *time.Location

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PMS
	PMSBaseURL      string
	PMSAccommoID    string
	PMSTimeout      time.Duration
	PMSRateLimit    int
	RefreshInterval time.Duration
	CacheFresh      time.Duration
	CacheRetain     time.Duration

	// Notifications
	SolapiURL       string
	SolapiAPIKey    string
	SolapiAPISecret string
	SolapiFrom      string
	NotifyChannel   string
	NotifyTo        string
	CheckInContact  string
	WebhookURL      string
	WebhookAPIKey   string
	SendTimeout     time.Duration

	// Ledger
	LedgerBackend string
	LedgerTTL     time.Duration

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresURI string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Timezone:   getEnv("TIMEZONE", "Asia/Seoul"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PMSBaseURL:      strings.TrimRight(getEnv("PMS_API_BASE_URL", ""), "/"),
		PMSAccommoID:    getEnv("PMS_ACCOMMO_ID", ""),
		PMSTimeout:      time.Duration(getEnvAsInt("PMS_TIMEOUT", 15)) * time.Second,
		PMSRateLimit:    getEnvAsInt("PMS_RATE_LIMIT", 5),
		RefreshInterval: time.Duration(getEnvAsInt("REFRESH_INTERVAL", 300)) * time.Second,
		CacheFresh:      time.Duration(getEnvAsInt("CACHE_FRESH_SECONDS", 300)) * time.Second,
		CacheRetain:     time.Duration(getEnvAsInt("CACHE_RETAIN_SECONDS", 1800)) * time.Second,

		SolapiURL:       getEnv("SOLAPI_URL", ""),
		SolapiAPIKey:    getEnv("SOLAPI_API_KEY", ""),
		SolapiAPISecret: getEnv("SOLAPI_API_SECRET", ""),
		SolapiFrom:      getEnv("SOLAPI_FROM_NUMBER", ""),
		NotifyChannel:   strings.ToLower(getEnv("NOTIFY_CHANNEL", "sms")),
		NotifyTo:        getEnv("NOTIFY_TO", ""),
		CheckInContact:  getEnv("CHECKIN_CONTACT", ""),
		WebhookURL:      getEnv("WEBHOOK_URL", ""),
		WebhookAPIKey:   getEnv("WEBHOOK_API_KEY", ""),
		SendTimeout:     time.Duration(getEnvAsInt("SEND_TIMEOUT", 10)) * time.Second,

		LedgerBackend: strings.ToLower(getEnv("LEDGER_BACKEND", LedgerMemory)),
		LedgerTTL:     time.Duration(getEnvAsInt("LEDGER_TTL_HOURS", 48)) * time.Hour,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "guesthouse"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_URI", ""),
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, err
	}
	config.Location = loc

	return config, nil
}

// Validate reports the configuration keys required at startup that are missing.
// Sender credentials are checked at the point of use instead.
func (c *Config) Validate() error {
	var missing []string
	if c.PMSBaseURL == "" {
		missing = append(missing, "PMS_API_BASE_URL")
	}
	if c.PMSAccommoID == "" {
		missing = append(missing, "PMS_ACCOMMO_ID")
	}

	switch c.LedgerBackend {
	case LedgerMemory:
	case LedgerRedis:
		if c.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case LedgerMongo:
		if c.MongoURI == "" {
			missing = append(missing, "MONGODB_DSN")
		}
	default:
		missing = append(missing, "LEDGER_BACKEND")
	}

	if len(missing) > 0 {
		return &entity.ConfigError{Keys: missing}
	}
	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
