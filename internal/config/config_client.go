package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-lms-offline/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// APIKey is presented to the LMS token endpoint.
	APIKey string `validate:"required"`
	// TokenSafetyMargin is subtracted from server-reported token lifetimes.
	TokenSafetyMargin time.Duration `validate:"gte=0"`
	// LogFile is the path the client log is appended to.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the LMS API base URL.
	HTTPAddress string `validate:"required,url"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
	// RateLimit is the number of requests per second sent to the LMS.
	RateLimit float64 `validate:"gt=0"`
	// DownloadRetries is how many times a failed download is retried.
	DownloadRetries uint64
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string `validate:"required"`
}

// ClientFiles contains the directories used for module downloads.
type ClientFiles struct {
	TempDir       string `validate:"required"`
	PersistentDir string `validate:"required,nefield=TempDir"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds download directories.
	Files ClientFiles
}

// ClientConnection holds the inputs of connection mode selection.
type ClientConnection struct {
	Network models.NetworkState
	Mode    models.Mode
}

// ClientWorkers contains client startup worker settings.
type ClientWorkers struct {
	// CacheMaxAge is the age after which leftover downloads are removed.
	CacheMaxAge time.Duration `validate:"gt=0"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] and the settings documents.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Connection contains connectivity inputs.
	Connection ClientConnection
	// Workers contains startup job settings.
	Workers ClientWorkers
	// Settings is the loaded settings document and route table.
	Settings *Settings `validate:"required"`
}

// GetClientConfig builds and validates a client-specific config view.
//
// It loads the base config via [GetStructuredConfig], loads the settings
// documents it points to, applies the api key and address overrides and
// validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	settings, err := LoadSettings(cfg.App.SettingsFile, cfg.App.RoutesFile)
	if err != nil {
		return nil, err
	}

	return newClientConfig(cfg, settings)
}

func newClientConfig(cfg *StructuredConfig, settings *Settings) (*ClientConfig, error) {
	network, err := models.ParseNetworkState(cfg.Connection.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnectionConfigs, err)
	}
	mode, err := models.ParseMode(cfg.Connection.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnectionConfigs, err)
	}

	settings = settings.
		withSetting(SettingAPIURL, cfg.Adapter.HTTPAddress).
		withSetting(SettingAPIKey, cfg.App.APIKey)

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIKey:            settings.Setting(SettingAPIKey),
			TokenSafetyMargin: cfg.App.TokenSafetyMargin,
			LogFile:           cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     settings.Setting(SettingAPIURL),
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			RateLimit:       cfg.Adapter.RateLimit,
			DownloadRetries: cfg.Adapter.DownloadRetries,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
			Files: ClientFiles{
				TempDir:       cfg.Storage.Files.TempDir,
				PersistentDir: cfg.Storage.Files.PersistentDir,
			},
		},
		Connection: ClientConnection{Network: network, Mode: mode},
		Workers:    ClientWorkers{CacheMaxAge: cfg.Workers.CacheMaxAge},
		Settings:   settings,
	}

	return clientCfg, clientCfg.validate()
}
