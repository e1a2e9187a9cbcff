package app

import (
	"testing"

	"github.com/specialistvlad/almanac/internal/almanac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			AlmanacPaths: []string{"input.txt"},
			Modes:        []almanac.Mode{almanac.ModePoints},
		}
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig(valid())
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, 1, cfg.Workers)
		assert.Empty(t, cfg.PublishEvent)
	})

	t.Run("publish event default", func(t *testing.T) {
		c := valid()
		c.PublishURL = "http://localhost:3000"
		cfg, err := NewConfig(c)
		require.NoError(t, err)
		assert.Equal(t, DefaultPublishEvent, cfg.PublishEvent)
	})

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no paths", mutate: func(c *Config) { c.AlmanacPaths = nil }},
		{name: "bad format", mutate: func(c *Config) { c.Format = "toml" }},
		{name: "bad export", mutate: func(c *Config) { c.Export = "toml" }},
		{name: "auto export", mutate: func(c *Config) { c.Export = "auto" }},
		{name: "no modes", mutate: func(c *Config) { c.Modes = nil }},
		{name: "bad mode", mutate: func(c *Config) { c.Modes = []almanac.Mode{"diagonal"} }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "bad port", mutate: func(c *Config) { c.HealthcheckPort = 70000 }},
		{name: "serve without port", mutate: func(c *Config) { c.Serve = true }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			_, err := NewConfig(c)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseLevel(t *testing.T) {
	_, ok := parseLevel("WARN")
	assert.True(t, ok)
	_, ok = parseLevel("verbose")
	assert.False(t, ok)
}
