package config

import (
	"os"

	"github.com/joho/godotenv"
)

// APIBaseURLEnv selects the API base URL, overriding the hardcoded fallback.
const APIBaseURLEnv = "BOOKA_API_URL"

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(APIBaseURLEnv); v != "" {
		cfg.APIBaseURL = v
	}
}
