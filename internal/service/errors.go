package service

import (
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/app"
)

var (
	// ErrInvalidCredentials is returned by the offline login when no
	// stored account matches the submitted credentials.
	ErrInvalidCredentials = fmt.Errorf("%w: no stored account matches the credentials", app.ErrAuthentication)

	// ErrIncompleteCredentials is returned when login or password is empty.
	ErrIncompleteCredentials = fmt.Errorf("%w: login and password are required", app.ErrAuthentication)

	// ErrNotAuthenticated is returned when an operation needs a session
	// and nobody has logged in.
	ErrNotAuthenticated = fmt.Errorf("%w: not logged in", app.ErrAuthentication)

	// ErrDownloadOffline is returned by the offline variant for every
	// download request.
	ErrDownloadOffline = fmt.Errorf("%w: downloading a module requires a connection", app.ErrNetwork)

	// ErrModuleNotLocal is returned when pinning a module that has not been
	// downloaded.
	ErrModuleNotLocal = fmt.Errorf("%w: learning module is not downloaded", app.ErrNotFound)

	ErrNilTask = fmt.Errorf("%w: no task to execute", app.ErrFormat)
)
