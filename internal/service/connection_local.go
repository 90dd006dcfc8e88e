package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

// localConnection serves every operation from the local store.
type localConnection struct {
	store   store.LocalStore
	session *Session
	logger  *logger.Logger
}

// NewLocalConnection returns the offline [Connection].
func NewLocalConnection(localStore store.LocalStore, session *Session, logger *logger.Logger) Connection {
	return newLocalConnection(localStore, session, logger)
}

func newLocalConnection(localStore store.LocalStore, session *Session, logger *logger.Logger) *localConnection {
	return &localConnection{store: localStore, session: session, logger: logger}
}

func (c *localConnection) Mode() models.Mode {
	return models.ModeOffline
}

// Login matches creds exactly against the stored accounts.
func (c *localConnection) Login(ctx context.Context, creds models.Credentials) (Task, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	user, err := c.store.Authenticate(ctx, creds.Login, creds.Password)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("login", creds.Login).Msg("offline login rejected")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	c.session.SetAccess(models.UserAccess{Login: creds.Login, Password: creds.Password})
	c.session.SetUser(user)

	return PassThroughTask{Result: TaskResult{User: user}}, nil
}

func (c *localConnection) GetUserInfo(_ context.Context) (Task, error) {
	user, ok := c.session.User()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return PassThroughTask{Result: TaskResult{User: user}}, nil
}

func (c *localConnection) GetCourses(ctx context.Context, user models.User) (Task, error) {
	courses, err := c.localCourses(ctx, user)
	if err != nil {
		return nil, err
	}
	return PassThroughTask{Result: TaskResult{Courses: courses}}, nil
}

func (c *localConnection) GetCourseInfo(ctx context.Context, course models.Course) (Task, error) {
	modules, err := c.localModules(ctx, course)
	if err != nil {
		return nil, err
	}
	return PassThroughTask{Result: TaskResult{Modules: modules}}, nil
}

func (c *localConnection) DownloadModule(_ context.Context, _ models.LearningModule) (Task, error) {
	return nil, ErrDownloadOffline
}

// PinToDesktop requires the module to be stored on the device.
func (c *localConnection) PinToDesktop(ctx context.Context, module models.LearningModule) error {
	if !module.Status.Has(models.StatusLocal) {
		return ErrModuleNotLocal
	}
	return c.store.SetDesktopFlag(ctx, module, true)
}

func (c *localConnection) UnpinFromDesktop(ctx context.Context, module models.LearningModule) error {
	return c.store.SetDesktopFlag(ctx, module, false)
}

func (c *localConnection) GetDesktopModules(ctx context.Context, user models.User) ([]models.LearningModule, error) {
	return c.store.GetDesktopModules(ctx, user)
}

func (c *localConnection) localCourses(ctx context.Context, user models.User) ([]models.Course, error) {
	return c.store.GetCourses(ctx, user)
}

func (c *localConnection) localModules(ctx context.Context, course models.Course) ([]models.LearningModule, error) {
	return c.store.GetLearningModules(ctx, course)
}
