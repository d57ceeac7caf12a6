package config

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	envPrefix  = "SKILLFIT_"
	dotEnvFile = ".env"
)

// envLookuper resolves variables from the process environment first and
// from the .env file at path second. A missing file is not an error.
func envLookuper(path string) envconfig.Lookuper {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vars = map[string]string{}
	}
	return envconfig.MultiLookuper(envconfig.OsLookuper(), envconfig.MapLookuper(vars))
}

// parseEnv overlays cfg with SKILLFIT_-prefixed variables. Unset variables
// leave the current value alone. Panics on malformed values.
func parseEnv(cfg *Config, l envconfig.Lookuper) {
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, l),
	})
	if err != nil {
		panic(err)
	}
}
