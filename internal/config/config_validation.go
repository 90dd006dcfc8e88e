// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the client view with struct tags and the settings
// documents with their own rules. The first failing group decides the
// returned sentinel.
func (cfg *ClientConfig) validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return err
		}

		first := verrs[0]
		return fmt.Errorf("%w: %s failed on %q", groupError(first.StructNamespace()), first.StructNamespace(), first.Tag())
	}

	return cfg.Settings.validate()
}

func groupError(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "ClientConfig.Storage"):
		return ErrInvalidStorageConfigs
	case strings.HasPrefix(namespace, "ClientConfig.Adapter"):
		return ErrInvalidAdapterConfigs
	case strings.HasPrefix(namespace, "ClientConfig.Workers"):
		return ErrInvalidWorkerConfigs
	case strings.HasPrefix(namespace, "ClientConfig.Settings"):
		return ErrInvalidSettings
	default:
		return ErrInvalidAppConfigs
	}
}
