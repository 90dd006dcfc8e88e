// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client core between the orchestrator and
// the storage and transport layers: the two connection variants, the tasks
// they produce, the executor running those tasks and the reconciliation of
// local and remote lists.
//
// A connection never finishes an operation on its own. It fetches what the
// operation needs and returns a [Task] describing how the fetched data is
// turned into the final result; [Executor.Execute] then runs the task.
package service

import (
	"context"

	"github.com/MKhiriev/go-lms-offline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connection_mock.go -package=mock

// Connection is the capability surface shared by the offline and online
// variants. Desktop operations always go to the local store regardless of
// the variant.
type Connection interface {
	// Mode reports which variant this is.
	Mode() models.Mode

	// Login authenticates creds and starts a session. No task is returned
	// when authentication fails.
	Login(ctx context.Context, creds models.Credentials) (Task, error)

	// GetUserInfo returns a task resolving to the session user.
	GetUserInfo(ctx context.Context) (Task, error)

	// GetCourses returns a task resolving to the courses of user.
	GetCourses(ctx context.Context, user models.User) (Task, error)

	// GetCourseInfo returns a task resolving to the modules of course.
	GetCourseInfo(ctx context.Context, course models.Course) (Task, error)

	// DownloadModule returns a task downloading and unpacking module. Its
	// result carries the follow-up ingest task in [TaskResult.Next].
	DownloadModule(ctx context.Context, module models.LearningModule) (Task, error)

	// PinToDesktop pins a downloaded module.
	PinToDesktop(ctx context.Context, module models.LearningModule) error

	// UnpinFromDesktop removes a module from the desktop.
	UnpinFromDesktop(ctx context.Context, module models.LearningModule) error

	// GetDesktopModules returns the pinned modules of user.
	GetDesktopModules(ctx context.Context, user models.User) ([]models.LearningModule, error)
}
