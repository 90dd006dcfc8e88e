// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the LMS
// client. It is populated by merging values from a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the API key presented to the
	// LMS, the token safety margin and the locations of the settings
	// documents.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database and the
	// directories used for downloaded modules.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the LMS server address and outbound request limits.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Connection holds the detected network state and the mode override.
	Connection Connection `envPrefix:"CONNECTION_"`

	// Workers holds configuration for startup workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey identifies this client to the LMS token endpoint. Overrides
	// the api_key value of the settings document when set.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// TokenSafetyMargin is subtracted from the token lifetime reported by
	// the server when the absolute expiry is computed.
	// Env: APP_TOKEN_SAFETY_MARGIN
	TokenSafetyMargin time.Duration `env:"TOKEN_SAFETY_MARGIN"`

	// SettingsFile is the path of the general settings document.
	// Env: APP_SETTINGS_FILE
	SettingsFile string `env:"SETTINGS_FILE"`

	// RoutesFile is the path of the REST route table.
	// Env: APP_ROUTES_FILE
	RoutesFile string `env:"ROUTES_FILE"`

	// LogFile is the path the client log is appended to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directories used for downloaded modules.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds filesystem settings for module downloads.
type Files struct {
	// TempDir holds downloaded archives and their extraction directories.
	// Its content may be removed at any time.
	// Env: STORAGE_FILES_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`

	// PersistentDir holds media of ingested modules, one directory per
	// module ref_id.
	// Env: STORAGE_FILES_PERSISTENT_DIR
	PersistentDir string `env:"PERSISTENT_DIR"`
}

// Adapter holds configuration of the outbound LMS transport.
type Adapter struct {
	// HTTPAddress is the LMS API base URL. Overrides the url_api value of
	// the settings document when set.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests per second sent to the
	// LMS.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// DownloadRetries is how many times a failed module download is
	// retried before giving up.
	// Env: ADAPTER_DOWNLOAD_RETRIES
	DownloadRetries uint64 `env:"DOWNLOAD_RETRIES"`
}

// Connection holds the connectivity inputs of mode selection.
type Connection struct {
	// Network is the network state reported by the device
	// (none, cellular, ethernet, wifi, unknown).
	// Env: CONNECTION_NETWORK
	Network string `env:"NETWORK"`

	// Mode forces online or offline mode; empty or "auto" derives it from
	// Network.
	// Env: CONNECTION_MODE
	Mode string `env:"MODE"`
}

// Workers holds configuration for startup workers.
type Workers struct {
	// CacheMaxAge is the age after which leftover extraction directories
	// are removed on startup.
	// Env: WORKERS_CACHE_MAX_AGE
	CacheMaxAge time.Duration `env:"CACHE_MAX_AGE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. For every field the first source providing a
// non-zero value wins, in the following order:
//  1. Environment variables (including a .env file in the working directory)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags is the value previously returned by [BindFlags]; nil skips flags.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
