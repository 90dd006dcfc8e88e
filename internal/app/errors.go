// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy shared by every layer of the
// LMS client together with the user-facing messages derived from it.
//
// Each package declares its own sentinel errors wrapping one of the kinds
// below, so callers can match either the precise sentinel or the broad
// kind with [errors.Is].
package app

import "errors"

// Error kinds. Every failure surfaced by the client core wraps exactly one
// of them.
var (
	// ErrAuthentication covers bad credentials in both modes and a missing
	// session.
	ErrAuthentication = errors.New("authentication failure")

	// ErrNetwork covers transport failures and unexpected server replies.
	ErrNetwork = errors.New("network failure")

	// ErrNotFound covers missing manifest components and missing local
	// records.
	ErrNotFound = errors.New("not found")

	// ErrStorage covers local database read and write failures.
	ErrStorage = errors.New("storage failure")

	// ErrFormat covers malformed or unexpected documents.
	ErrFormat = errors.New("format failure")

	// ErrFilesystem covers download, unzip, move and read failures on the
	// device filesystem.
	ErrFilesystem = errors.New("filesystem failure")
)

var kinds = []error{ErrAuthentication, ErrNetwork, ErrNotFound, ErrStorage, ErrFormat, ErrFilesystem}

// Kind returns the error kind err belongs to, or nil when err is nil or
// does not wrap any known kind.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
