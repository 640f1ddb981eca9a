package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every externally sourced setting. It is built once in main
// and passed down; business logic never reads the environment directly.
type Config struct {
	ServerPort  string
	Environment string

	MongoURI string
	MongoDB  string

	JWTSecret     string
	JWTExpiry     int64 // seconds
	BcryptCost    int
	PromoteSecret string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string

	SiteName string
	SiteURL  string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "rodvers"),

		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:     getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		BcryptCost:    int(getEnvAsInt64("BCRYPT_COST", 10)),
		PromoteSecret: getEnv("PROMOTE_SECRET", ""),

		CloudinaryCloud:  getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinarySecret: getEnv("CLOUDINARY_API_SECRET", ""),

		SiteName: getEnv("SITE_NAME", "Rodvers Listings"),
		SiteURL:  getEnv("SITE_URL", "https://listings-chvc.onrender.com"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
