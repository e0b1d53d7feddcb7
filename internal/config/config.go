package config

import (
	"os"
	"strconv"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	// URI takes precedence over the individual parts when set.
	URI             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	AuthSource      string
	MaxPoolSize     int
	MinPoolSize     int
	MaxConnIdleSec  int
	QueryTimeoutSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UseSSL       bool
	URLExpirySec int
}

// Enabled reports whether object storage was configured at all.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	TimeZone           string
	LogLevel           string
	ShutdownTimeoutSec int
	Mongo              MongoConfig
	MinIO              MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		TimeZone:           getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Mongo: MongoConfig{
			URI:             getEnv("MONGO_URI", ""),
			Host:            getEnv("MONGO_HOST", "localhost"),
			Port:            getEnv("MONGO_PORT", "27017"),
			User:            getEnv("MONGO_USER", ""),
			Password:        getEnv("MONGO_PASSWORD", ""),
			Name:            getEnv("MONGO_DB", "Sys_Co"),
			AuthSource:      getEnv("MONGO_AUTH_SOURCE", ""),
			MaxPoolSize:     getEnvInt("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     getEnvInt("MONGO_MIN_POOL_SIZE", 0),
			MaxConnIdleSec:  getEnvInt("MONGO_MAX_CONN_IDLE_SEC", 300),
			QueryTimeoutSec: getEnvInt("MONGO_QUERY_TIMEOUT_SEC", 10),
		},
		MinIO: MinIOConfig{
			Endpoint:     getEnv("MINIO_ENDPOINT", ""),
			AccessKey:    getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:    getEnv("MINIO_SECRET_KEY", ""),
			Bucket:       getEnv("MINIO_BUCKET", ""),
			UseSSL:       getEnvBool("MINIO_USE_SSL", false),
			URLExpirySec: getEnvInt("IMAGE_URL_EXPIRY_SEC", 900),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
