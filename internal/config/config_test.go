package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Contains(t, cfg.DSN(), "dbname=freshfold")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestDSN_ExplicitWins(t *testing.T) {
	var cfg Config
	cfg.Database.DSN = "host=db user=u password=p dbname=x port=5432 sslmode=require"
	cfg.Database.Host = "ignored"

	assert.Equal(t, "host=db user=u password=p dbname=x port=5432 sslmode=require", cfg.DSN())
}
