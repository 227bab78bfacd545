package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	Port         string
	JWTSecret    string
	StripeKey    string
	AllowOrigins []string

	OTLPEndpoint string
	ServiceName  string
}

func LoadConfig() *Config {
	// .env is only present in local development; deployed environments
	// supply real env vars.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "bazario"),
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "SECRET"),
		StripeKey:    getEnv("STRIPE_SECRET_KEY", ""),
		AllowOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "bazario-backend"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
