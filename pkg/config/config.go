package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server struct {
		Port    string
		Env     string
		Timeout time.Duration
	}

	// Database configuration
	Database struct {
		URL      string
		MaxConns int
		Timeout  time.Duration
	}

	// Redis configuration
	Redis struct {
		Host     string
		Port     string
		DB       int
		Password string
	}

	// External API credentials and client settings
	API struct {
		OpenAIKey      string
		HuggingFaceKey string
		WeatherKey     string
		MarketURL      string
		Timeout        time.Duration
	}

	// SecretKey signs anonymous session tokens
	SecretKey string

	// Cache TTLs for external lookups
	Cache struct {
		WeatherTTL time.Duration
		MarketTTL  time.Duration
	}

	// Logging configuration
	Logging struct {
		Level  string
		Format string
	}

	// Intents maps keywords to intent names; overridable via environment
	Intents map[string][]string
}

// New creates a Config populated from environment variables
func New() *Config {
	// Load .env file if exists
	godotenv.Load()

	cfg := &Config{}

	// Server config
	cfg.Server.Port = getEnvString("PORT", "8000")
	cfg.Server.Env = getEnvString("APP_ENV", "development")
	cfg.Server.Timeout = getEnvDuration("SERVER_TIMEOUT", 30*time.Second)

	// Database config
	cfg.Database.URL = getEnvString("DATABASE_URL", "")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 20)
	cfg.Database.Timeout = getEnvDuration("DB_TIMEOUT", 5*time.Second)

	// Redis config
	cfg.Redis.Host = getEnvString("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvString("REDIS_PORT", "6379")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.Password = getEnvString("REDIS_PASSWORD", "")

	// API config
	cfg.API.OpenAIKey = getEnvString("OPENAI_API_KEY", "")
	cfg.API.HuggingFaceKey = getEnvString("HUGGINGFACE_KEY", "")
	cfg.API.WeatherKey = getEnvString("WEATHER_API_KEY", "")
	cfg.API.MarketURL = getEnvString("MARKET_API_URL", "")
	cfg.API.Timeout = getEnvDuration("API_TIMEOUT", 30*time.Second)

	// Secret key for session tokens
	cfg.SecretKey = getEnvString("FARMER_SECRET_KEY", "")

	// Cache settings
	cfg.Cache.WeatherTTL = getEnvDuration("WEATHER_CACHE_TTL", 10*time.Minute)
	cfg.Cache.MarketTTL = getEnvDuration("MARKET_CACHE_TTL", 30*time.Minute)

	// Logging config
	cfg.Logging.Level = getEnvString("LOG_LEVEL", "info")
	cfg.Logging.Format = getEnvString("LOG_FORMAT", "json")

	// Intent keyword mapping, overridable per intent
	cfg.Intents = map[string][]string{
		"weather": getEnvStringSlice("INTENT_KEYWORDS_WEATHER",
			[]string{"weather", "rain", "temperature", "forecast", "humidity", "climate"}),
		"price": getEnvStringSlice("INTENT_KEYWORDS_PRICE",
			[]string{"price", "market", "rate", "sell", "mandi", "cost"}),
		"disease": getEnvStringSlice("INTENT_KEYWORDS_DISEASE",
			[]string{"disease", "pest", "infection", "fungus", "blight", "leaf spot"}),
		"crops": getEnvStringSlice("INTENT_KEYWORDS_CROPS",
			[]string{"crop", "sow", "plant", "harvest", "season", "soil"}),
	}

	return cfg
}

// Validate checks that required settings are present.
// A missing required value is fatal at startup.
func (c *Config) Validate() error {
	var missing []string

	if c.API.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.API.HuggingFaceKey == "" {
		missing = append(missing, "HUGGINGFACE_KEY")
	}
	if c.SecretKey == "" {
		missing = append(missing, "FARMER_SECRET_KEY")
	}
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RedisAddr returns the host:port address of the Redis server
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// Helper functions to read environment variables with default values

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
