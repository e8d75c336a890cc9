package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, 3009, cfg.Port)
		require.Equal(t, StorageDriverSqlite, cfg.StorageDriver)
		require.Equal(t, 30*time.Minute, cfg.ExportTokenTTL)
	})

	t.Run("overrides from env", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("RATE_WINDOW", "30s")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
		require.Equal(t, 30*time.Second, cfg.RateWindow)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")

		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestLoadSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	err := os.WriteFile(path, []byte(`{
		"db": {"host": "localhost", "user": "postgres", "port": "5432", "password": "pw", "database": "profitcalc"},
		"jwt": "signing-key",
		"adminApiKey": "admin"
	}`), 0o600)
	require.NoError(t, err)

	secrets, err := LoadSecrets(path)
	require.NoError(t, err)

	require.Equal(t, "signing-key", secrets.Jwt)
	require.Equal(
		t,
		"host=localhost port=5432 user=postgres password=pw dbname=profitcalc sslmode=disable",
		secrets.Db.ToConnectionStr(),
	)

	require.Equal(t, "secrets-dev.json", SecretsFile("dev", ""))
	require.Equal(t, "/tmp/x.json", SecretsFile("dev", "/tmp/x.json"))
}
