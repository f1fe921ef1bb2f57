package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad(t *testing.T) {
	setEnv(t, map[string]string{
		"JWT_SECRET":           "0123456789abcdef0123",
		"JWT_EXPIRATION":       "30m",
		"DB_DRIVER":            " SQLite ",
		"DATABASE_URL":         "",
		"ALLOWED_UPLOAD_TYPES": "image/png,application/pdf",
		"MAX_UPLOAD_BYTES":     "2048",
		"PORT":                 "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiration)
	assert.Equal(t, []string{"image/png", "application/pdf"}, cfg.AllowedUploadTypes)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "estate-cms.db", cfg.DSN())
}

func TestLoadRejectsWeakSecrets(t *testing.T) {
	for _, secret := range []string{"secret", "short", "your-secret-key-change-this-in-production"} {
		t.Run(secret, func(t *testing.T) {
			setEnv(t, map[string]string{"JWT_SECRET": secret, "DB_DRIVER": "postgres"})
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	setEnv(t, map[string]string{"JWT_SECRET": "0123456789abcdef0123", "DB_DRIVER": "oracle", "MAX_UPLOAD_BYTES": "1024"})
	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverPostgres, DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())

	cfg.DBURL = "postgres://u:p@db/n"
	assert.Equal(t, "postgres://u:p@db/n", cfg.DSN())
}
