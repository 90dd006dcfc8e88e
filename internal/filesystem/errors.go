package filesystem

import (
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/app"
)

var (
	ErrFileNotFound      = fmt.Errorf("%w: file not found", app.ErrNotFound)
	ErrDirectoryNotFound = fmt.Errorf("%w: directory not found", app.ErrNotFound)

	ErrPathOutsideBase = fmt.Errorf("%w: path escapes base directory", app.ErrFilesystem)
	ErrDownloadFailed  = fmt.Errorf("%w: download failed", app.ErrFilesystem)
	ErrUnzipFailed     = fmt.Errorf("%w: unzip failed", app.ErrFilesystem)
	ErrMoveFailed      = fmt.Errorf("%w: move failed", app.ErrFilesystem)
	ErrReadFailed      = fmt.Errorf("%w: read failed", app.ErrFilesystem)
	ErrDeleteFailed    = fmt.Errorf("%w: delete failed", app.ErrFilesystem)
	ErrCreateFailed    = fmt.Errorf("%w: create failed", app.ErrFilesystem)
)
