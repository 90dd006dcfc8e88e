package models

import "strings"

// Status is a bitmask telling where an entity is known to exist.
type Status uint8

const (
	// StatusLocal marks an entity stored on the device.
	StatusLocal Status = 1
	// StatusRemote marks an entity reported by the server.
	StatusRemote Status = 2
	// StatusNone marks an entity with no known location.
	StatusNone Status = 4
)

// Has reports whether every bit of flag is set in s.
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// Primary returns the single status shown to the user: Local wins over
// Remote, and anything else is None.
func (s Status) Primary() Status {
	switch {
	case s.Has(StatusLocal):
		return StatusLocal
	case s.Has(StatusRemote):
		return StatusRemote
	default:
		return StatusNone
	}
}

func (s Status) String() string {
	if s == 0 {
		return "unset"
	}

	parts := make([]string, 0, 3)
	if s.Has(StatusLocal) {
		parts = append(parts, "local")
	}
	if s.Has(StatusRemote) {
		parts = append(parts, "remote")
	}
	if s.Has(StatusNone) {
		parts = append(parts, "none")
	}
	return strings.Join(parts, "|")
}
