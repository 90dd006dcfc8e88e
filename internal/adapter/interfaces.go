// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// LMS server.
//
// The primary abstraction is [ServerAdapter], which decouples the
// connection layer from the REST protocol. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) that obtains tokens through the
// OAuth2 password grant and passes the access token as a query parameter,
// as the LMS REST plugin expects.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the LMS server. Implementations
// map transport failures to the sentinel values defined in this package.
type ServerAdapter interface {
	// Authenticate performs the password grant and returns the obtained
	// tokens together with the submitted credentials. ExpiresAt already
	// includes the configured safety margin.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.UserAccess, error)

	// GetUserInfo returns the profile of the authenticated user.
	GetUserInfo(ctx context.Context, access models.UserAccess) (models.UserProfile, error)

	// GetCourses returns the courses the user is a member of. Returned
	// courses carry the Remote status.
	GetCourses(ctx context.Context, access models.UserAccess) ([]models.Course, error)

	// GetCourseInfo returns the learning modules of the course with the
	// given ref_id. Returned modules carry the Remote status.
	GetCourseInfo(ctx context.Context, access models.UserAccess, courseRefID int64) ([]models.LearningModule, error)

	// DownloadURL returns the URL the archive of a module is fetched from.
	DownloadURL(access models.UserAccess, moduleRefID int64) (string, error)

	// Fetch opens a download stream. Transient failures are retried.
	filesystem.Fetcher
}
