package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	StorageBackend string
	MongoURL       string
	DBName         string
	DBURL          string
	SupabaseURL    string
	SupabaseKey    string
	JWTSecret      string
	TokenExpiryHrs int
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	EmailTo        string
	AdminEmail     string
	AdminPassword  string
}

func Load() *Config {
	// Missing .env is fine in deployments that set real env vars.
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", "mongo"),
		MongoURL:       getEnv("MONGO_URL", ""),
		DBName:         getEnv("DB_NAME", "lsweb"),
		DBURL:          getEnv("DB_URL", ""),
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseKey:    getEnv("SUPABASE_KEY", ""),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		TokenExpiryHrs: getEnvAsInt("TOKEN_EXPIRY_HOURS", 24),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		EmailTo:        getEnv("EMAIL_TO", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@lsweb.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
	}
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
