package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "http://flagged:3000/api/v1")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://flagged:3000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "booka.db", cfg.TokenDBPath)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, "-verbose", "-a", "http://flagged:3000/api/v1", "--unknown=1")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://flagged:3000/api/v1", cfg.APIBaseURL)
}
