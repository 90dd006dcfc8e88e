package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-lms-offline/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateCredentials rejects a login form with an empty field before any
// store or network round trip.
func validateCredentials(creds models.Credentials) error {
	err := validate.Struct(creds)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteCredentials, verrs[0].Field())
	}
	return fmt.Errorf("%w: %w", ErrIncompleteCredentials, err)
}
