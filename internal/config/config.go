package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	StorageBackend string
	StorageKey     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SQLitePath string

	S3Endpoint     string
	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool

	JWTSecret      string
	JWTExpiryHours int

	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	CardColor       bool
	CardRemove      bool
	FilterBypassCap bool
}

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendS3       = "s3"
)

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		StorageKey:     getEnv("STORAGE_KEY", "cards"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "noteboard"),
		DBPassword: getEnv("DB_PASSWORD", "noteboard"),
		DBName:     getEnv("DB_NAME", "noteboard"),

		SQLitePath: getEnv("SQLITE_PATH", "./noteboard.db"),

		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3UsePathStyle: getBool("S3_USE_PATH_STYLE", true),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getInt("JWT_EXPIRY_HOURS", 24*30),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		CORSOrigins: getList("CORS_ORIGINS"),

		CardColor:       getBool("FEATURE_CARD_COLOR", true),
		CardRemove:      getBool("FEATURE_CARD_REMOVE", true),
		FilterBypassCap: getBool("FEATURE_FILTER_BYPASS_CAP", true),
	}
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️  Invalid boolean for %s: %q, using %v", key, value, defaultVal)
		return defaultVal
	}
	return b
}

func getInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Invalid integer for %s: %q, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}

func getList(key string) []string {
	value := getEnv(key, "")
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
