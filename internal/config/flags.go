package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the
// config value the flags are parsed into. The returned value is only
// meaningful after fs has been parsed (cobra does this before running a
// command).
//
// Flags:
//
//	-a/--address        LMS API base URL
//	-d/--database       database DSN
//	-c/--config         json file path with configs
//	--api-key           api key presented to the token endpoint
//	--settings          general settings document path
//	--routes            REST route table path
//	--log-file          log file path
//	--temp-dir          temporary download directory
//	--data-dir          persistent module directory
//	--request-timeout   request timeout (e.g., "30s", "1m")
//	--rate-limit        requests per second sent to the LMS
//	--download-retries  module download retries
//	--network           network state (none, cellular, ethernet, wifi, unknown)
//	--mode              connection mode override (auto, online, offline)
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "LMS API base URL")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.APIKey, "api-key", "", "API key presented to the token endpoint")
	fs.StringVar(&cfg.App.SettingsFile, "settings", "", "General settings document path")
	fs.StringVar(&cfg.App.RoutesFile, "routes", "", "REST route table path")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Storage.Files.TempDir, "temp-dir", "", "Temporary download directory")
	fs.StringVar(&cfg.Storage.Files.PersistentDir, "data-dir", "", "Persistent module directory")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "rate-limit", 0, "Requests per second sent to the LMS")
	fs.Uint64Var(&cfg.Adapter.DownloadRetries, "download-retries", 0, "Module download retries")
	fs.StringVar(&cfg.Connection.Network, "network", "", "Network state: none, cellular, ethernet, wifi, unknown")
	fs.StringVar(&cfg.Connection.Mode, "mode", "", "Connection mode override: auto, online, offline")

	return cfg
}
