package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-lms-offline/internal/adapter"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

// downloadHeaders are sent with every module download.
var downloadHeaders = map[string]string{"Accept": "application/zip, application/octet-stream"}

// serverConnection talks to the LMS server and reconciles what it reports
// with the local store. Desktop operations and the local views are
// inherited from the offline variant.
type serverConnection struct {
	*localConnection

	adapter adapter.ServerAdapter
	now     func() time.Time
}

// NewServerConnection returns the online [Connection].
func NewServerConnection(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) Connection {
	return &serverConnection{
		localConnection: newLocalConnection(localStore, session, logger),
		adapter:         serverAdapter,
		now:             time.Now,
	}
}

func (c *serverConnection) Mode() models.Mode {
	return models.ModeOnline
}

// Login runs the password grant and keeps the tokens in the session. The
// user is stored once its profile is fetched by GetUserInfo.
func (c *serverConnection) Login(ctx context.Context, creds models.Credentials) (Task, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	if _, err := c.authenticate(ctx, creds); err != nil {
		return nil, err
	}

	return PassThroughTask{Result: TaskResult{User: models.User{Login: creds.Login, Password: creds.Password}}}, nil
}

func (c *serverConnection) GetUserInfo(ctx context.Context) (Task, error) {
	profile, err := withAccess(ctx, c, func(access models.UserAccess) (models.UserProfile, error) {
		return c.adapter.GetUserInfo(ctx, access)
	})
	if err != nil {
		return nil, err
	}

	access := c.session.Access()
	return SaveUserDataTask{User: models.User{
		Login:     access.Login,
		Password:  access.Password,
		Firstname: profile.Firstname,
		Lastname:  profile.Lastname,
		Avatar:    profile.Avatar,
	}}, nil
}

func (c *serverConnection) GetCourses(ctx context.Context, user models.User) (Task, error) {
	local, err := c.localCourses(ctx, user)
	if err != nil {
		return nil, err
	}

	remote, err := withAccess(ctx, c, func(access models.UserAccess) ([]models.Course, error) {
		return c.adapter.GetCourses(ctx, access)
	})
	if err != nil {
		return nil, err
	}
	for i := range remote {
		remote[i].Owner = user
	}

	return MergeCoursesTask{Local: local, Remote: remote}, nil
}

func (c *serverConnection) GetCourseInfo(ctx context.Context, course models.Course) (Task, error) {
	local, err := c.localModules(ctx, course)
	if err != nil {
		return nil, err
	}

	remote, err := withAccess(ctx, c, func(access models.UserAccess) ([]models.LearningModule, error) {
		return c.adapter.GetCourseInfo(ctx, access, course.RefID)
	})
	if err != nil {
		return nil, err
	}

	return MergeModulesTask{Course: course, Local: local, Remote: remote}, nil
}

// DownloadModule resolves the download URL with a valid token. The archive
// itself is fetched when the returned task is executed.
func (c *serverConnection) DownloadModule(ctx context.Context, module models.LearningModule) (Task, error) {
	url, err := withAccess(ctx, c, func(access models.UserAccess) (string, error) {
		return c.adapter.DownloadURL(access, module.RefID)
	})
	if err != nil {
		return nil, err
	}

	return DownloadAndUnpackTask{Module: module, URL: url, Headers: downloadHeaders}, nil
}

// authenticate runs the password grant and replaces the session tokens.
func (c *serverConnection) authenticate(ctx context.Context, creds models.Credentials) (models.UserAccess, error) {
	log := logger.FromContext(ctx)

	access, err := c.adapter.Authenticate(ctx, creds)
	if err != nil {
		log.Info().Err(err).Str("login", creds.Login).Msg("online login rejected")
		return models.UserAccess{}, err
	}

	c.session.SetAccess(access)
	return access, nil
}

// validAccess returns the session access, logging in again first when the
// token is missing or expired.
func (c *serverConnection) validAccess(ctx context.Context) (models.UserAccess, error) {
	access := c.session.Access()
	if access.Login == "" {
		return models.UserAccess{}, ErrNotAuthenticated
	}
	if !access.Expired(c.now()) {
		return access, nil
	}

	logger.FromContext(ctx).Debug().Str("login", access.Login).Msg("access token expired, logging in again")
	return c.authenticate(ctx, access.Credentials())
}

// withAccess calls fn with a valid access token. A token the server rejects
// is renewed once and fn is called again.
func withAccess[T any](ctx context.Context, c *serverConnection, fn func(access models.UserAccess) (T, error)) (T, error) {
	var zero T

	access, err := c.validAccess(ctx)
	if err != nil {
		return zero, err
	}

	result, err := fn(access)
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return result, err
	}

	logger.FromContext(ctx).Debug().Str("login", access.Login).Msg("access token rejected, logging in again")
	if access, err = c.authenticate(ctx, access.Credentials()); err != nil {
		return zero, err
	}
	return fn(access)
}
