package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSafetyMargin: time.Minute,
			SettingsFile:      "settings/settings.json",
			RoutesFile:        "settings/routes.json",
			LogFile:           "lms-client.log",
		},
		Storage: Storage{
			DB:    DB{DSN: "lms.db"},
			Files: Files{TempDir: "cache", PersistentDir: "data"},
		},
		Adapter: Adapter{
			RequestTimeout:  30 * time.Second,
			RateLimit:       5,
			DownloadRetries: 3,
		},
		Workers: Workers{CacheMaxAge: 24 * time.Hour},
	}
}
