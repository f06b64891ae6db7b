// Package config loads the runtime configuration of the caesar tool from
// environment variables.
//
// Optional .env files are read with godotenv, then github.com/caarlos0/env
// populates Config from struct tags. Subsystem settings (Redis, S3, Postgres,
// HTTP) are declared next to the code that uses them and embedded here.
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//
// Parse does the same from an explicit map, which keeps tests independent of
// the process environment.
package config
