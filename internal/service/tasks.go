package service

import (
	"github.com/MKhiriev/go-lms-offline/models"
)

// TaskKind names a task variant in logs.
type TaskKind int

const (
	KindPassThrough TaskKind = iota
	KindSaveUserData
	KindMergeCourses
	KindMergeModules
	KindDownloadAndUnpack
	KindIngestAndPersist
)

func (k TaskKind) String() string {
	switch k {
	case KindPassThrough:
		return "pass-through"
	case KindSaveUserData:
		return "save-user-data"
	case KindMergeCourses:
		return "merge-courses"
	case KindMergeModules:
		return "merge-modules"
	case KindDownloadAndUnpack:
		return "download-and-unpack"
	case KindIngestAndPersist:
		return "ingest-and-persist"
	default:
		return "unknown"
	}
}

// Task is deferred work produced by a [Connection]. The set of variants is
// closed: only the types declared in this package implement it.
type Task interface {
	Kind() TaskKind
	task()
}

// TaskResult is the outcome of one executed task. Only the fields the
// variant produces are set.
type TaskResult struct {
	User    models.User
	Courses []models.Course
	Modules []models.LearningModule
	Module  models.LearningModule

	// Next is a follow-up task that must run to finish the operation.
	Next Task
}

// PassThroughTask returns data that is already final.
type PassThroughTask struct {
	Result TaskResult
}

// SaveUserDataTask stores the profile fetched from the server and returns
// the stored user.
type SaveUserDataTask struct {
	User models.User
}

// MergeCoursesTask reconciles the local and remote course lists.
type MergeCoursesTask struct {
	Local  []models.Course
	Remote []models.Course
}

// MergeModulesTask reconciles the local and remote modules of Course.
type MergeModulesTask struct {
	Course models.Course
	Local  []models.LearningModule
	Remote []models.LearningModule
}

// DownloadAndUnpackTask fetches the module archive from URL and unpacks it
// into a temporary directory.
type DownloadAndUnpackTask struct {
	Module  models.LearningModule
	URL     string
	Headers map[string]string
}

// IngestAndPersistTask builds the unpacked module found in
// Module.Directory and writes it to the local store.
type IngestAndPersistTask struct {
	Module models.LearningModule
}

func (PassThroughTask) Kind() TaskKind       { return KindPassThrough }
func (SaveUserDataTask) Kind() TaskKind      { return KindSaveUserData }
func (MergeCoursesTask) Kind() TaskKind      { return KindMergeCourses }
func (MergeModulesTask) Kind() TaskKind      { return KindMergeModules }
func (DownloadAndUnpackTask) Kind() TaskKind { return KindDownloadAndUnpack }
func (IngestAndPersistTask) Kind() TaskKind  { return KindIngestAndPersist }

func (PassThroughTask) task()       {}
func (SaveUserDataTask) task()      {}
func (MergeCoursesTask) task()      {}
func (MergeModulesTask) task()      {}
func (DownloadAndUnpackTask) task() {}
func (IngestAndPersistTask) task()  {}
