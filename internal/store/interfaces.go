// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local relational store of the LMS client:
// users, courses, learning modules and their chapters and pages, kept in
// an SQLite database.
//
// Entities are written with upserts keyed by their natural keys (login and
// password for users, ref_id for courses and modules, export_id for
// chapters and pages). A module is written together with its chapters and
// pages in one transaction.
package store

import (
	"context"

	"github.com/MKhiriev/go-lms-offline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the device-side persistence used by both connection modes.
type LocalStore interface {
	// Authenticate returns the stored user matching login and password
	// exactly, or [ErrUserNotFound].
	Authenticate(ctx context.Context, login, password string) (models.User, error)

	// GetCourses returns every course stored for user with status Local.
	// An empty result is not an error.
	GetCourses(ctx context.Context, user models.User) ([]models.Course, error)

	// GetLearningModules returns the modules stored for course (matched by
	// ref_id and owner) with their chapters and pages in reading order.
	GetLearningModules(ctx context.Context, course models.Course) ([]models.LearningModule, error)

	// GetDesktopModules returns the pinned modules of courses owned by user.
	GetDesktopModules(ctx context.Context, user models.User) ([]models.LearningModule, error)

	// SetDesktopFlag pins or unpins a stored module.
	SetDesktopFlag(ctx context.Context, module models.LearningModule, onDesktop bool) error

	// UpsertUser stores user keyed by login and password and returns it
	// with its id.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)

	// UpsertCourse stores course keyed by ref_id within its owner.
	UpsertCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpsertLearningModule stores module, its owning course, its chapters
	// and their pages in one transaction. Chapters and pages no longer
	// present in module are removed.
	UpsertLearningModule(ctx context.Context, module models.LearningModule) (models.LearningModule, error)

	// UpsertChapter stores chapter and its pages keyed by export_id within
	// the owning module.
	UpsertChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error)

	// UpsertPage stores page keyed by export_id within the owning chapter.
	UpsertPage(ctx context.Context, page models.Page) (models.Page, error)
}
