package service

import (
	"github.com/MKhiriev/go-lms-offline/internal/adapter"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

// Connections holds both connection variants over one session and hands
// out the one matching a resolved mode.
type Connections struct {
	offline Connection
	online  Connection
}

// NewConnections builds both variants sharing session.
func NewConnections(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) *Connections {
	return &Connections{
		offline: NewLocalConnection(localStore, session, logger),
		online:  NewServerConnection(localStore, serverAdapter, session, logger),
	}
}

// NewConnectionsOf wraps two ready connections.
func NewConnectionsOf(offline, online Connection) *Connections {
	return &Connections{offline: offline, online: online}
}

// For returns the online variant for [models.ModeOnline] and the offline
// variant for anything else.
func (c *Connections) For(mode models.Mode) Connection {
	if mode == models.ModeOnline {
		return c.online
	}
	return c.offline
}
