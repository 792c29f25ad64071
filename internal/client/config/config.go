package config

// Config holds runtime settings for the Booka CLI.
//
// Fields:
//   - APIBaseURL: base path of the Booka REST API, including the version
//     prefix (e.g. "http://localhost:3000/api/v1").
//   - TokenDBPath: path of the local database file holding the persisted
//     session token.
type Config struct {
	APIBaseURL  string
	TokenDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api/v1"
	c.TokenDBPath = "booka.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if given),
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
