// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It combines github.com/joho/godotenv (optional .env file for local
// development) with github.com/caarlos0/env/v11 (struct tag parsing) and
// caches each successfully parsed configuration type so it is only parsed
// once for the lifetime of the process.
package config
