package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	JWTSecret          string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Per-environment dotenv file; absent in containerized deployments
	// where everything arrives through real environment variables.
	if err := godotenv.Load(fmt.Sprintf(".env.%s.local", env)); err != nil {
		log.Printf("no .env.%s.local file, relying on process environment", env)
	}

	return &Config{
		Env:                env,
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("JWT_EXPIRY_MIN", 15),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_EXPIRY_MIN", 10080),
	}
}

// IsProduction controls the Secure flag on the refresh cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
