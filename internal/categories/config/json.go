package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moviecategories/internal/flagx"
	"github.com/dmitrijs2005/moviecategories/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Absent fields
// leave the current values untouched.
type JsonConfig struct {
	Address            *string         `json:"address"`
	DatabaseDSN        *string         `json:"database_dsn"`
	JWTKey             *string         `json:"jwt_key"`
	JWTIssuer          *string         `json:"jwt_issuer"`
	JWTAudience        *string         `json:"jwt_audience"`
	AuthAPIURL         *string         `json:"auth_api_url"`
	AuthTimeout        *timex.Duration `json:"auth_timeout"`
	AuthRetries        *uint64         `json:"auth_retries"`
	AuthRetryBaseDelay *timex.Duration `json:"auth_retry_base_delay"`
	Environment        *string         `json:"environment"`
}

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

	for dst, v := range map[*string]*string{
		&config.Address:     c.Address,
		&config.DatabaseDSN: c.DatabaseDSN,
		&config.JWTKey:      c.JWTKey,
		&config.JWTIssuer:   c.JWTIssuer,
		&config.JWTAudience: c.JWTAudience,
		&config.AuthAPIURL:  c.AuthAPIURL,
		&config.Environment: c.Environment,
	} {
		if v != nil {
			*dst = *v
		}
	}
	if c.AuthTimeout != nil {
		config.AuthTimeout = c.AuthTimeout.Duration
	}
	if c.AuthRetries != nil {
		config.AuthRetries = *c.AuthRetries
	}
	if c.AuthRetryBaseDelay != nil {
		config.AuthRetryBaseDelay = c.AuthRetryBaseDelay.Duration
	}
}
