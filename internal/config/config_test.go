package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "traincrew-data", c.DataDir)
	assert.Equal(t, "traincrew.db", c.DatabaseFile)
	assert.Equal(t, int64(5*1024*1024), c.QuotaBytes)
	assert.Equal(t, 20*time.Second, c.ReleaseDelay)
	assert.Equal(t, 1024, c.PhotoMaxWidth)
	assert.InDelta(t, 0.6, c.PhotoQuality, 1e-9)
	assert.Equal(t, 300, c.AvatarMaxWidth)
	assert.InDelta(t, 0.7, c.AvatarQuality, 1e-9)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "traincrew-data", cfg.DataDir)
	assert.Equal(t, 20*time.Second, cfg.ReleaseDelay)
}
