package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.CSV.QuoteAll = true
	c.UI.Theme = "dark"
	c.UI.RowsPerPage = 10
	return c
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(defaultConfig()))
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"zero rows per page", func(c *Config) { c.UI.RowsPerPage = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}
}

func TestInitializeConfigDefaults(t *testing.T) {
	c, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ",", c.CSV.Delimiter)
	assert.True(t, c.CSV.QuoteAll)
	assert.Equal(t, "dark", c.UI.Theme)
	assert.Equal(t, 10, c.UI.RowsPerPage)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("PENJUALAN_UI_THEME", "light")
	t.Setenv("PENJUALAN_LOG_LEVEL", "debug")

	c, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "light", c.UI.Theme)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestDataDirectoryOverride(t *testing.T) {
	c := defaultConfig()
	c.Data.Directory = "/tmp/penjualan-data"
	assert.Equal(t, "/tmp/penjualan-data", c.DataDirectory())

	c.Data.Directory = ""
	assert.Contains(t, c.DataDirectory(), ".app-penjualan")
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := defaultConfig()
	c.Log.Level = "debug"
	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	c.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(c)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
