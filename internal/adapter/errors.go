package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/app"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid login or password", app.ErrAuthentication)
	ErrUnauthorized       = fmt.Errorf("%w: client unauthorized", app.ErrAuthentication)

	ErrNotFound = fmt.Errorf("%w: resource not found on server", app.ErrNotFound)

	ErrServerUnreachable = fmt.Errorf("%w: server unreachable", app.ErrNetwork)
	ErrUnexpectedStatus  = fmt.Errorf("%w: unexpected server response", app.ErrNetwork)
	ErrBadGateway        = fmt.Errorf("%w: bad gateway", app.ErrNetwork)
	ErrInternalServer    = fmt.Errorf("%w: internal server error", app.ErrNetwork)

	ErrDecodingResponse = fmt.Errorf("%w: undecodable server response", app.ErrFormat)
	ErrInvalidAddress   = fmt.Errorf("%w: invalid server address", app.ErrNetwork)
)
