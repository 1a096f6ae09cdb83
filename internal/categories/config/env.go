package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays environment variables, after loading an optional .env
// file from the working directory.
//
//	CATEGORIES_ADDRESS, DATABASE_DSN, JWT_KEY, JWT_ISSUER, JWT_AUDIENCE,
//	AUTH_API_URL, AUTH_RETRIES, ENVIRONMENT
func parseEnv(config *Config) {
	_ = godotenv.Load()

	for key, dst := range map[string]*string{
		"CATEGORIES_ADDRESS": &config.Address,
		"DATABASE_DSN":       &config.DatabaseDSN,
		"JWT_KEY":            &config.JWTKey,
		"JWT_ISSUER":         &config.JWTIssuer,
		"JWT_AUDIENCE":       &config.JWTAudience,
		"AUTH_API_URL":       &config.AuthAPIURL,
		"ENVIRONMENT":        &config.Environment,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("AUTH_RETRIES"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.AuthRetries = n
		}
	}
}
