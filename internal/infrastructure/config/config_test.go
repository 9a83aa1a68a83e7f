package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"FERREO_APP_NAME":          os.Getenv("FERREO_APP_NAME"),
		"FERREO_APP_ENV":           os.Getenv("FERREO_APP_ENV"),
		"FERREO_APP_PORT":          os.Getenv("FERREO_APP_PORT"),
		"FERREO_DATABASE_HOST":     os.Getenv("FERREO_DATABASE_HOST"),
		"FERREO_DATABASE_PORT":     os.Getenv("FERREO_DATABASE_PORT"),
		"FERREO_DATABASE_PASSWORD": os.Getenv("FERREO_DATABASE_PASSWORD"),
		"FERREO_JWT_SECRET":        os.Getenv("FERREO_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ferreo", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ferreo", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("loads values from environment variables with FERREO prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FERREO_APP_PORT", "9000")
		os.Setenv("FERREO_DATABASE_HOST", "db.internal")
		os.Setenv("FERREO_DATABASE_PORT", "5433")
		os.Setenv("FERREO_DATABASE_PASSWORD", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "secret", cfg.Database.Password)
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("FERREO_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production with jwt secret loads", func(t *testing.T) {
		clearEnv()
		os.Setenv("FERREO_APP_ENV", "production")
		os.Setenv("FERREO_JWT_SECRET", "super-secret-value")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		DBName:   "ferreo",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/ferreo?sslmode=disable", d.DSN())
}
