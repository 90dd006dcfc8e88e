// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filesystem implements the device filesystem contract used by the
// download and ingestion pipeline: downloading a module archive, unpacking
// it, moving media into permanent storage and reading the unpacked
// documents.
//
// Handles are plain paths on the underlying [afero.Fs]. Temporary artifacts
// live under the temporary root, permanent ones under the persistent root.
package filesystem

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/filesystem_mock.go -package=mock

// StorageClass selects the root a downloaded file is written to.
type StorageClass uint8

const (
	// Temporary is the cache root, cleaned after ingestion.
	Temporary StorageClass = iota
	// Persistent is the permanent data root.
	Persistent
)

// Entry describes one directory entry.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// DownloadOptions tune [Filesystem.DownloadFile].
type DownloadOptions struct {
	// Filename is the name of the written file. A unique name is generated
	// when empty.
	Filename string
	// Headers are sent with the request.
	Headers map[string]string
}

// Fetcher opens a remote resource for reading. The transport layer
// implements it; the caller closes the returned reader.
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error)
}

// Filesystem is the contract the ingestion pipeline depends on.
type Filesystem interface {
	// DownloadFile streams url into a file under the root of class and
	// returns its path. A partially written file never remains.
	DownloadFile(ctx context.Context, url string, class StorageClass, opts DownloadOptions) (string, error)
	// Unzip extracts the archive at file into dest, or into a fresh
	// directory under the temporary root when dest is empty, and returns
	// the extraction directory.
	Unzip(ctx context.Context, file, dest string) (string, error)
	// CreatePersistentDirectory creates (or reuses) name under the
	// persistent root.
	CreatePersistentDirectory(name string) (string, error)
	// MoveDirectory moves src to destParent/name, replacing whatever is
	// there.
	MoveDirectory(src, name, destParent string) error
	ReadFileAsText(dir, name string) (string, error)
	ListDirectoryEntries(dir string) ([]Entry, error)
	// ResolveFile resolves rel against base and requires a regular file.
	ResolveFile(base, rel string) (string, error)
	// ResolveDirectory resolves rel against base and requires a directory.
	ResolveDirectory(base, rel string) (string, error)
	// DeleteRecursively removes dir/name. An absent target is not an
	// error.
	DeleteRecursively(dir, name string) error
	// URL returns the file URL of dir, with a trailing slash.
	URL(dir string) string
	// Root returns the root directory of class.
	Root(class StorageClass) string
}
