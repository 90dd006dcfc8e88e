package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		APIKey            string   `json:"api_key"`
		TokenSafetyMargin Duration `json:"token_safety_margin"`
		SettingsFile      string   `json:"settings_file"`
		RoutesFile        string   `json:"routes_file"`
		LogFile           string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			TempDir       string `json:"temp_dir"`
			PersistentDir string `json:"persistent_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RateLimit       float64  `json:"rate_limit"`
		DownloadRetries uint64   `json:"download_retries"`
	} `json:"adapter,omitempty"`

	Connection struct {
		Network string `json:"network"`
		Mode    string `json:"mode"`
	} `json:"connection,omitempty"`

	Workers struct {
		CacheMaxAge Duration `json:"cache_max_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:            jsonCfg.App.APIKey,
			TokenSafetyMargin: time.Duration(jsonCfg.App.TokenSafetyMargin),
			SettingsFile:      jsonCfg.App.SettingsFile,
			RoutesFile:        jsonCfg.App.RoutesFile,
			LogFile:           jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				TempDir:       jsonCfg.Storage.Files.TempDir,
				PersistentDir: jsonCfg.Storage.Files.PersistentDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:       jsonCfg.Adapter.RateLimit,
			DownloadRetries: jsonCfg.Adapter.DownloadRetries,
		},
		Connection: Connection{
			Network: jsonCfg.Connection.Network,
			Mode:    jsonCfg.Connection.Mode,
		},
		Workers: Workers{
			CacheMaxAge: time.Duration(jsonCfg.Workers.CacheMaxAge),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
