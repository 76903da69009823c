package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBDSN     string
	JWTSecret string

	// HolidayDefaultCreator is stamped onto holiday entries created without
	// an explicit created_by.
	HolidayDefaultCreator string
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:                  getenv("PORT", "8000"),
		DBDriver:              getenv("DB_DRIVER", "mysql"),
		DBDSN:                 getenv("DB_DSN", "admin:12345678@tcp(127.0.0.1:3306)/backofficego?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:             getenv("JWT_SECRET", "supersecretkey"),
		HolidayDefaultCreator: getenv("HOLIDAY_DEFAULT_CREATOR", "Admin"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
