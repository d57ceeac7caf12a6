// Package config loads runtime configuration for the skillfit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then the process environment,
//     both with the SKILLFIT_ prefix (see parseEnv). Real environment
//     variables win over .env entries.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the skillfit backend
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// # Environment
//
//	SKILLFIT_BASE_URL, SKILLFIT_REQUEST_TIMEOUT ("30s"), SKILLFIT_DB_PATH,
//	SKILLFIT_LOG_LEVEL, SKILLFIT_LOG_FILE
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "db_path": "skillfit.db",
//	  "log_level": "info",
//	  "log_file": "skillfit.log"
//	}
package config
