package builder

import (
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/app"
)

var (
	ErrManifestComponentMissing = fmt.Errorf("%w: manifest component missing", app.ErrNotFound)

	ErrMalformedDocument  = fmt.Errorf("%w: malformed document", app.ErrFormat)
	ErrPageBeforeChapter  = fmt.Errorf("%w: page node before any chapter node", app.ErrFormat)
	ErrPageContentMissing = fmt.Errorf("%w: page content missing", app.ErrFormat)
	ErrMediaNotFound      = fmt.Errorf("%w: referenced media object not described", app.ErrFormat)
	ErrStepOrder          = fmt.Errorf("%w: manifest must be parsed first", app.ErrFormat)
)
