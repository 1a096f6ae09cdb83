package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moviecategories/internal/flagx"
	"github.com/dmitrijs2005/moviecategories/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Only fields that
// are present in the file override the current values.
type JsonConfig struct {
	Address       *string         `json:"address"`
	DatabaseDSN   *string         `json:"database_dsn"`
	JWTKey        *string         `json:"jwt_key"`
	JWTIssuer     *string         `json:"jwt_issuer"`
	JWTAudience   *string         `json:"jwt_audience"`
	TokenLifetime *timex.Duration `json:"token_lifetime"`
	Environment   *string         `json:"environment"`
}

// parseJson loads the file named by -c/-config, if any. An unreadable file or
// invalid JSON panics, as a misconfigured service must not start.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Address, c.Address)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.JWTKey, c.JWTKey)
	setString(&config.JWTIssuer, c.JWTIssuer)
	setString(&config.JWTAudience, c.JWTAudience)
	setString(&config.Environment, c.Environment)
	if c.TokenLifetime != nil {
		config.TokenLifetime = c.TokenLifetime.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
