package config_test

import (
	"os"
	"testing"
	"time"

	"backoffice/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("base settings", func(t *testing.T) {
		cfg, err := config.LoadConfig("../../settings", "")
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Service.Port)
		assert.Equal(t, 10*time.Second, cfg.Service.RequestTimeout)
		assert.Equal(t, "tms_control", cfg.Databases.Control.Database)
		assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
		assert.False(t, cfg.Databases.Redis.Enabled())
		require.NotEmpty(t, cfg.Menu)
		assert.Equal(t, "home", cfg.Menu[0].Key)
	})

	t.Run("environment overlay is merged", func(t *testing.T) {
		cfg, err := config.LoadConfig("../../settings", "TESTING")
		require.NoError(t, err)

		assert.Equal(t, "testing-secret", cfg.Auth.JWTSecret)
		assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
		assert.Equal(t, "tms_control_test", cfg.Databases.Control.Database)
		// untouched keys keep the base value
		assert.Equal(t, "localhost", cfg.Databases.Control.Host)
		assert.Equal(t, 4, len(cfg.Menu[1].Children))
	})

	t.Run("missing overlay is ignored", func(t *testing.T) {
		cfg, err := config.LoadConfig("../../settings", "STAGING")
		require.NoError(t, err)
		assert.Equal(t, "change-me", cfg.Auth.JWTSecret)
	})

	t.Run("environment variables override files", func(t *testing.T) {
		t.Setenv("BACKOFFICE_SERVICE_PORT", "9090")
		cfg, err := config.LoadConfig("../../settings", "")
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Service.Port)
	})

	t.Run("missing settings directory", func(t *testing.T) {
		dir, err := os.MkdirTemp("", "settings")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		_, err = config.LoadConfig(dir, "")
		assert.Error(t, err)
	})
}

func TestSQLConfigDSN(t *testing.T) {
	c := config.SQLConfig{Host: "db", Port: "5432", Username: "u", Password: "p", Database: "control"}
	assert.Equal(t, "host=db user=u password=p dbname=control port=5432 sslmode=disable", c.DSN())

	c.ConnectionString = "postgres://u:p@db/control"
	assert.Equal(t, "postgres://u:p@db/control", c.DSN())
}
