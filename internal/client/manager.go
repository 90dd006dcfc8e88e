package client

import (
	"context"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/models"
)

// Manager runs every user-triggered operation against the connection
// matching the network state observed when the operation starts.
type Manager struct {
	connections *service.Connections
	runner      TaskRunner
	session     *service.Session
	network     NetworkMonitor
	override    models.Mode
	logger      *logger.Logger
}

// NewManager creates a Manager. override forces a connection mode unless
// it is [models.ModeAuto].
func NewManager(connections *service.Connections, runner TaskRunner, session *service.Session, network NetworkMonitor, override models.Mode, logger *logger.Logger) *Manager {
	return &Manager{
		connections: connections,
		runner:      runner,
		session:     session,
		network:     network,
		override:    override,
		logger:      logger,
	}
}

// Mode returns the connection mode an operation started now would use.
func (m *Manager) Mode() models.Mode {
	return models.ResolveMode(m.network.NetworkState(), m.override)
}

func (m *Manager) connection(ctx context.Context, op string) (context.Context, service.Connection) {
	conn := m.connections.For(m.Mode())

	log := &logger.Logger{Logger: m.logger.With().Str("op", op).Str("mode", string(conn.Mode())).Logger()}
	return log.WithContext(ctx), conn
}

// Login authenticates creds and loads the profile of the user. In online
// mode the profile is stored on the device so later offline logins accept
// the same credentials.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	ctx, conn := m.connection(ctx, "login")

	task, err := conn.Login(ctx, creds)
	if err != nil {
		return models.User{}, err
	}
	if _, err = m.runner.Run(ctx, task); err != nil {
		return models.User{}, err
	}

	return m.loadProfile(ctx, conn)
}

// Profile reloads the profile of the logged-in user.
func (m *Manager) Profile(ctx context.Context) (models.User, error) {
	ctx, conn := m.connection(ctx, "profile")
	return m.loadProfile(ctx, conn)
}

func (m *Manager) loadProfile(ctx context.Context, conn service.Connection) (models.User, error) {
	task, err := conn.GetUserInfo(ctx)
	if err != nil {
		return models.User{}, err
	}

	result, err := m.runner.Run(ctx, task)
	if err != nil {
		return models.User{}, err
	}

	m.session.SetUser(result.User)
	logger.FromContext(ctx).Info().Str("login", result.User.Login).Msg("user signed in")
	return result.User, nil
}

// Courses returns the courses of the logged-in user.
func (m *Manager) Courses(ctx context.Context) ([]models.Course, error) {
	ctx, conn := m.connection(ctx, "courses")

	user, err := m.user()
	if err != nil {
		return nil, err
	}

	task, err := conn.GetCourses(ctx, user)
	if err != nil {
		return nil, err
	}

	result, err := m.runner.Run(ctx, task)
	if err != nil {
		return nil, err
	}
	return result.Courses, nil
}

// Modules returns the learning modules of course.
func (m *Manager) Modules(ctx context.Context, course models.Course) ([]models.LearningModule, error) {
	ctx, conn := m.connection(ctx, "modules")

	task, err := conn.GetCourseInfo(ctx, course)
	if err != nil {
		return nil, err
	}

	result, err := m.runner.Run(ctx, task)
	if err != nil {
		return nil, err
	}
	return result.Modules, nil
}

// Download fetches, unpacks, builds and stores module and returns the
// stored module.
func (m *Manager) Download(ctx context.Context, module models.LearningModule) (models.LearningModule, error) {
	ctx, conn := m.connection(ctx, "download")

	task, err := conn.DownloadModule(ctx, module)
	if err != nil {
		return models.LearningModule{}, err
	}

	result, err := m.runner.Run(ctx, task)
	if err != nil {
		return models.LearningModule{}, err
	}
	return result.Module, nil
}

func (m *Manager) PinToDesktop(ctx context.Context, module models.LearningModule) error {
	ctx, conn := m.connection(ctx, "pin")
	return conn.PinToDesktop(ctx, module)
}

func (m *Manager) UnpinFromDesktop(ctx context.Context, module models.LearningModule) error {
	ctx, conn := m.connection(ctx, "unpin")
	return conn.UnpinFromDesktop(ctx, module)
}

// Desktop returns the pinned modules of the logged-in user.
func (m *Manager) Desktop(ctx context.Context) ([]models.LearningModule, error) {
	ctx, conn := m.connection(ctx, "desktop")

	user, err := m.user()
	if err != nil {
		return nil, err
	}
	return conn.GetDesktopModules(ctx, user)
}

func (m *Manager) user() (models.User, error) {
	user, ok := m.session.User()
	if !ok {
		return models.User{}, service.ErrNotAuthenticated
	}
	return user, nil
}
