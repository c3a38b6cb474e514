// Package config provides centralized configuration management for the
// Cash Flow Story API. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration values
// throughout the application.
//
// # Configuration Sources
//
// Configuration is layered in the following order, later layers winning:
//
//	1. Default values (Default)
//	2. YAML file (CFS_CONFIG_FILE, config.yaml or configs/config.yaml)
//	3. A .env file in the working directory, if present
//	4. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern CFS_<SECTION>_<KEY>:
//
//	CFS_SERVER_PORT=8000
//	CFS_SECURITY_ALLOWED_ORIGINS=http://localhost:5173,https://cashflowstory.com
//	CFS_LOGGING_LEVEL=debug
//	CFS_ANALYTICS_BATCH_CONCURRENCY=8
//	CFS_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For testing, use config.Default() to obtain a configuration that does not
// depend on the environment.
package config
