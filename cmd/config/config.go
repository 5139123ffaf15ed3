package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	RateLimit   RateLimitConfig
	AMQP        AMQPConfig
	Hasher      HasherConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// URI is the document-store connection string. Defaults to a local
	// instance.
	URI       string
	Name      string
	OpTimeout time.Duration
}

type RateLimitConfig struct {
	Capacity int
	Window   time.Duration
}

type AMQPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type HasherConfig struct {
	Cost          int
	MaxConcurrent int
}

// Load reads configuration from environment variables, with a .env file
// picked up for local development. Every value has a working default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			URI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Name:      getEnv("MONGO_DB", "user_db"),
			OpTimeout: getEnvDuration("MONGO_OP_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			Capacity: getEnvInt("RATE_LIMIT_CAPACITY", 10),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		AMQP: AMQPConfig{
			Host:     getEnv("AMQP_HOST", "localhost"),
			Port:     getEnvInt("AMQP_PORT", 5672),
			User:     getEnv("AMQP_USER", "guest"),
			Password: getEnv("AMQP_PASSWORD", "guest"),
		},
		Hasher: HasherConfig{
			Cost:          getEnvInt("BCRYPT_COST", 0),
			MaxConcurrent: getEnvInt("HASHER_MAX_CONCURRENT", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
