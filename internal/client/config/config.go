package config

import "time"

// Config holds runtime settings for the skillfit CLI.
//
// Logs go to LogFile so they do not interleave with the interactive prompt.
type Config struct {
	BaseURL        string        `env:"BASE_URL, overwrite"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	DatabasePath   string        `env:"DB_PATH, overwrite"`
	LogLevel       string        `env:"LOG_LEVEL, overwrite"`
	LogFile        string        `env:"LOG_FILE, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 60 * time.Second
	c.DatabasePath = "skillfit.db"
	c.LogLevel = "info"
	c.LogFile = "skillfit.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, envLookuper(dotEnvFile))
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
