// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

const (
	// MsgInvalidLoginPassword is shown when the credentials match neither
	// the server nor a stored account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgServerUnreachable is shown when the LMS server cannot be reached or
	// answers with an unexpected status.
	MsgServerUnreachable = "cannot reach the LMS server, check the internet connection"

	// MsgLocalDataUnavailable is shown when data stored on the device
	// cannot be read or written.
	MsgLocalDataUnavailable = "cannot read data stored on the device"

	// MsgNotFound is shown when the requested course or module is not
	// available on the device.
	MsgNotFound = "the requested item is not available on the device"

	// MsgModuleMalformed is shown when a downloaded module cannot be parsed.
	MsgModuleMalformed = "the learning module has an unexpected format"

	// MsgDownloadFailed is shown when a module cannot be downloaded or
	// unpacked.
	MsgDownloadFailed = "cannot download the learning module, check the internet connection"

	// MsgInternalError is shown for failures of no known kind.
	MsgInternalError = "internal error"
)

// UserMessage maps err to the message shown to the student. Different
// kinds always produce different messages so the reason of a failure is
// visible in both connection modes.
func UserMessage(err error) string {
	switch kind := Kind(err); {
	case errors.Is(kind, ErrAuthentication):
		return MsgInvalidLoginPassword
	case errors.Is(kind, ErrNetwork):
		return MsgServerUnreachable
	case errors.Is(kind, ErrStorage):
		return MsgLocalDataUnavailable
	case errors.Is(kind, ErrNotFound):
		return MsgNotFound
	case errors.Is(kind, ErrFormat):
		return MsgModuleMalformed
	case errors.Is(kind, ErrFilesystem):
		return MsgDownloadFailed
	default:
		return MsgInternalError
	}
}
