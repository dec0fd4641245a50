package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "eventhub")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "eventhub")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "defaultsecret", cfg.JWTSecret)
	assert.Equal(t, "uploads", cfg.UploadsRoot)
}

func TestLoadConfigMissingDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
