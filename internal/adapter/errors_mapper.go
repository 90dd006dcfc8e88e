package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	return mapStatus(resp.StatusCode(), body)
}

func mapStatus(status int, body string) error {
	if body == "" {
		body = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServer, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}

// mapTokenError maps a failed password grant. The token endpoint answers
// rejected credentials with 400, 401 or 403.
func mapTokenError(err error) error {
	var (
		retrieveErr *oauth2.RetrieveError
		urlErr      *url.Error
	)

	switch {
	case errors.As(err, &retrieveErr):
	case errors.As(err, &urlErr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	default:
		// e.g. a 2xx reply without access_token
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	status := 0
	if retrieveErr.Response != nil {
		status = retrieveErr.Response.StatusCode
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, retrieveErr.ErrorCode)
	default:
		return mapStatus(status, strings.TrimSpace(string(retrieveErr.Body)))
	}
}
