package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or equal temp and persistent directories).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, missing api key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid startup worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidConnectionConfigs indicates an unknown network state or
	// mode override.
	ErrInvalidConnectionConfigs = errors.New("invalid connection configuration")
)

// Settings document errors.
var (
	ErrReadingSettings = errors.New("error reading settings documents")
	ErrInvalidSettings = errors.New("invalid settings documents")
	ErrUnknownRoute    = errors.New("unknown route")
)
