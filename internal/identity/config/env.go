package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays environment variables. A .env file in the working
// directory is loaded first when present; real environment variables win.
//
//	IDENTITY_ADDRESS, DATABASE_DSN, JWT_KEY, JWT_ISSUER, JWT_AUDIENCE,
//	JWT_TOKEN_LIFETIME_HOURS, ENVIRONMENT
func parseEnv(config *Config) {
	_ = godotenv.Load()

	lookup(&config.Address, "IDENTITY_ADDRESS")
	lookup(&config.DatabaseDSN, "DATABASE_DSN")
	lookup(&config.JWTKey, "JWT_KEY")
	lookup(&config.JWTIssuer, "JWT_ISSUER")
	lookup(&config.JWTAudience, "JWT_AUDIENCE")
	lookup(&config.Environment, "ENVIRONMENT")

	if v, ok := os.LookupEnv("JWT_TOKEN_LIFETIME_HOURS"); ok {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenLifetime = time.Duration(hours) * time.Hour
		}
	}
}

func lookup(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
