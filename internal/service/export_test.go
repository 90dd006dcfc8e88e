package service

import "time"

// WithBuild replaces the module builder used by ingest tasks.
func (e *Executor) WithBuild(fn BuildFunc) *Executor {
	e.build = fn
	return e
}

// SetClock replaces the clock of an online connection.
func SetClock(conn Connection, now func() time.Time) {
	conn.(*serverConnection).now = now
}
