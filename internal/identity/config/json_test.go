package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"address":        "www.example:9000",
			"database_dsn":   "dsn",
			"jwt_key":        "my_secret_key",
			"jwt_issuer":     "iss",
			"jwt_audience":   "aud",
			"token_lifetime": "2h",
			"environment":    "Development",
		})

		cfg := &Config{}
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "www.example:9000", cfg.Address)
		assert.Equal(t, "dsn", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.JWTKey)
		assert.Equal(t, "iss", cfg.JWTIssuer)
		assert.Equal(t, "aud", cfg.JWTAudience)
		assert.Equal(t, 2*time.Hour, cfg.TokenLifetime)
		assert.Equal(t, "Development", cfg.Environment)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"jwt_key": "k2"})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", path})

		assert.Equal(t, "k2", cfg.JWTKey)
		assert.Equal(t, ":8081", cfg.Address)
		assert.Equal(t, time.Hour, cfg.TokenLifetime)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{Address: "defaults:1234"}
		parseJson(cfg, nil)
		assert.Equal(t, "defaults:1234", cfg.Address)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", "/does/not/exist.json"}) })
	})
}
