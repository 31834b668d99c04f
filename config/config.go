package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort string
	GinMode string

	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	AllowedOrigins []string

	// When true, GET /posts/:id/comments answers 404 for a post with no
	// comments instead of 200 with an empty array.
	CommentsEmptyAsNotFound bool

	// Logging configuration
	LogLevel      string
	LogPath       string
	GinPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration from the environment. A .env file
// in the working directory is applied first when present. It should be called
// once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = godotenv.Load()

	cfg = AppConfig{
		AppPort:                 getEnv("APP_PORT", "8080"),
		GinMode:                 getEnv("GIN_MODE", "release"),
		DatabaseURI:             getEnv("DATABASE_URI", ""),
		DBHost:                  getEnv("DB_HOST", "127.0.0.1"),
		DBPort:                  getEnv("DB_PORT", "3306"),
		DBUser:                  getEnv("DB_USER", "root"),
		DBPassword:              getEnv("DB_PASSWORD", ""),
		DBName:                  getEnv("DB_NAME", "blog"),
		AllowedOrigins:          readListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CommentsEmptyAsNotFound: getEnv("COMMENTS_EMPTY_AS_NOT_FOUND", "false") == "true",
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogPath:                 getEnv("LOG_PATH", "logs/blogapi.log"),
		GinPath:                 getEnv("GIN_PATH", "logs/gin.log"),
		LogMaxSizeMB:            mustParseInt(getEnv("LOG_MAX_SIZE_MB", "100")),
		LogMaxBackups:           mustParseInt(getEnv("LOG_MAX_BACKUPS", "3")),
		LogMaxAgeDays:           mustParseInt(getEnv("LOG_MAX_AGE_DAYS", "7")),
		LogCompress:             getEnv("LOG_COMPRESS", "false") == "true",
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func readListEnv(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaults
	}
	return items
}
