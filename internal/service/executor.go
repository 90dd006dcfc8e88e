package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-lms-offline/internal/builder"
	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

// BuildFunc turns an unpacked module directory into a populated module.
type BuildFunc func(ctx context.Context, module models.LearningModule, fs filesystem.Filesystem) (models.LearningModule, error)

// Executor runs tasks produced by connections.
type Executor struct {
	store  store.LocalStore
	fs     filesystem.Filesystem
	build  BuildFunc
	logger *logger.Logger
}

// NewExecutor returns an Executor persisting through localStore and
// unpacking modules on fs with [builder.Build].
func NewExecutor(localStore store.LocalStore, fs filesystem.Filesystem, logger *logger.Logger) *Executor {
	return &Executor{
		store:  localStore,
		fs:     fs,
		build:  builder.Build,
		logger: logger,
	}
}

// Execute runs one task. Follow-up work is returned in [TaskResult.Next]
// and is not executed.
func (e *Executor) Execute(ctx context.Context, task Task) (TaskResult, error) {
	if task == nil {
		return TaskResult{}, ErrNilTask
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("task", task.Kind().String()).Msg("executing task")

	switch t := task.(type) {
	case PassThroughTask:
		return t.Result, nil
	case SaveUserDataTask:
		return e.saveUserData(ctx, t)
	case MergeCoursesTask:
		return TaskResult{Courses: MergeCourses(t.Local, t.Remote)}, nil
	case MergeModulesTask:
		return TaskResult{Modules: MergeLearningModules(t.Course, t.Local, t.Remote)}, nil
	case DownloadAndUnpackTask:
		return e.downloadAndUnpack(ctx, t)
	case IngestAndPersistTask:
		return e.ingestAndPersist(ctx, t)
	default:
		return TaskResult{}, fmt.Errorf("%w: %s", ErrNilTask, task.Kind())
	}
}

// Run executes task and every follow-up task it produces, returning the
// result of the last one.
func (e *Executor) Run(ctx context.Context, task Task) (TaskResult, error) {
	for {
		result, err := e.Execute(ctx, task)
		if err != nil {
			return TaskResult{}, err
		}
		if result.Next == nil {
			return result, nil
		}
		task = result.Next
	}
}

func (e *Executor) saveUserData(ctx context.Context, t SaveUserDataTask) (TaskResult, error) {
	user, err := e.store.UpsertUser(ctx, t.User)
	if err != nil {
		return TaskResult{}, err
	}
	return TaskResult{User: user}, nil
}

func (e *Executor) downloadAndUnpack(ctx context.Context, t DownloadAndUnpackTask) (TaskResult, error) {
	log := logger.FromContext(ctx)

	archive, err := e.fs.DownloadFile(ctx, t.URL, filesystem.Temporary, filesystem.DownloadOptions{Headers: t.Headers})
	if err != nil {
		return TaskResult{}, err
	}
	defer func() {
		if err := e.fs.DeleteRecursively(filepath.Dir(archive), filepath.Base(archive)); err != nil {
			log.Warn().Err(err).Str("func", "*Executor.downloadAndUnpack").Msg("cannot remove downloaded archive")
		}
	}()

	dir, err := e.fs.Unzip(ctx, archive, "")
	if err != nil {
		return TaskResult{}, err
	}

	module := t.Module
	module.Directory = dir

	log.Info().Int64("ref_id", module.RefID).Msg("learning module downloaded")
	return TaskResult{Module: module, Next: IngestAndPersistTask{Module: module}}, nil
}

func (e *Executor) ingestAndPersist(ctx context.Context, t IngestAndPersistTask) (TaskResult, error) {
	log := logger.FromContext(ctx)

	defer func() {
		if t.Module.Directory == "" {
			return
		}
		if err := e.fs.DeleteRecursively(t.Module.Directory, ""); err != nil {
			log.Warn().Err(err).Str("func", "*Executor.ingestAndPersist").Msg("cannot remove extraction directory")
		}
	}()

	built, err := e.build(ctx, t.Module, e.fs)
	if err != nil {
		log.Err(err).Str("func", "*Executor.ingestAndPersist").Int64("ref_id", t.Module.RefID).Msg("cannot build learning module")
		return TaskResult{}, err
	}
	built.Directory = ""

	stored, err := e.store.UpsertLearningModule(ctx, built)
	if err != nil {
		return TaskResult{}, err
	}

	log.Info().Int64("ref_id", stored.RefID).Int("chapters", len(stored.Chapters)).Msg("learning module stored")
	return TaskResult{Module: stored}, nil
}
