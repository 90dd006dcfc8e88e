package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lms-offline/internal/adapter"
	"github.com/MKhiriev/go-lms-offline/internal/app"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/mock"
	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/models"
)

// runnerFunc adapts a function to TaskRunner.
type runnerFunc func(ctx context.Context, task service.Task) (service.TaskResult, error)

func (f runnerFunc) Run(ctx context.Context, task service.Task) (service.TaskResult, error) {
	return f(ctx, task)
}

// passThrough runs pass-through and merge tasks the way the executor does.
var passThrough = runnerFunc(func(_ context.Context, task service.Task) (service.TaskResult, error) {
	switch t := task.(type) {
	case service.PassThroughTask:
		return t.Result, nil
	case service.MergeCoursesTask:
		return service.TaskResult{Courses: service.MergeCourses(t.Local, t.Remote)}, nil
	case service.SaveUserDataTask:
		user := t.User
		user.ID = 42
		return service.TaskResult{User: user}, nil
	}
	return service.TaskResult{}, errors.New("unexpected task")
})

type managerFixture struct {
	offline *mock.MockConnection
	online  *mock.MockConnection
	session *service.Session
}

func newTestManager(t *testing.T, network models.NetworkState, override models.Mode, runner TaskRunner) (*Manager, managerFixture) {
	ctrl := gomock.NewController(t)
	f := managerFixture{
		offline: mock.NewMockConnection(ctrl),
		online:  mock.NewMockConnection(ctrl),
		session: service.NewSession(),
	}
	f.offline.EXPECT().Mode().Return(models.ModeOffline).AnyTimes()
	f.online.EXPECT().Mode().Return(models.ModeOnline).AnyTimes()

	connections := service.NewConnectionsOf(f.offline, f.online)
	return NewManager(connections, runner, f.session, StaticNetwork(network), override, logger.Nop()), f
}

func TestManager_Mode(t *testing.T) {
	tests := []struct {
		network  models.NetworkState
		override models.Mode
		want     models.Mode
	}{
		{models.NetworkWiFi, models.ModeAuto, models.ModeOnline},
		{models.NetworkCellular, models.ModeAuto, models.ModeOnline},
		{models.NetworkEthernet, models.ModeAuto, models.ModeOffline},
		{models.NetworkNone, models.ModeAuto, models.ModeOffline},
		{models.NetworkUnknown, models.ModeAuto, models.ModeOffline},
		{models.NetworkWiFi, models.ModeOffline, models.ModeOffline},
		{models.NetworkNone, models.ModeOnline, models.ModeOnline},
	}

	for _, tt := range tests {
		t.Run(string(tt.network)+"/"+string(tt.override), func(t *testing.T) {
			m, _ := newTestManager(t, tt.network, tt.override, passThrough)
			assert.Equal(t, tt.want, m.Mode())
		})
	}
}

func TestManager_Login_Online(t *testing.T) {
	m, f := newTestManager(t, models.NetworkWiFi, models.ModeAuto, passThrough)
	ctx := context.Background()

	creds := models.Credentials{Login: "alice", Password: "secret"}
	gomock.InOrder(
		f.online.EXPECT().Login(gomock.Any(), creds).
			Return(service.PassThroughTask{Result: service.TaskResult{User: models.User{Login: "alice"}}}, nil),
		f.online.EXPECT().GetUserInfo(gomock.Any()).
			Return(service.SaveUserDataTask{User: models.User{Login: "alice", Password: "secret", Firstname: "Alice"}}, nil),
	)

	user, err := m.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Alice", user.Firstname)

	stored, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, user, stored)
}

func TestManager_Login_OfflineRejected(t *testing.T) {
	m, f := newTestManager(t, models.NetworkNone, models.ModeAuto, passThrough)

	f.offline.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidCredentials)

	_, err := m.Login(context.Background(), models.Credentials{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, app.ErrAuthentication)
	assert.Equal(t, app.MsgInvalidLoginPassword, app.UserMessage(err))
	_, ok := f.session.User()
	assert.False(t, ok)
}

func TestManager_Login_RunnerFailure(t *testing.T) {
	failing := runnerFunc(func(context.Context, service.Task) (service.TaskResult, error) {
		return service.TaskResult{}, errors.New("boom")
	})
	m, f := newTestManager(t, models.NetworkWiFi, models.ModeAuto, failing)

	f.online.EXPECT().Login(gomock.Any(), gomock.Any()).Return(service.PassThroughTask{}, nil)

	_, err := m.Login(context.Background(), models.Credentials{Login: "a", Password: "b"})
	assert.EqualError(t, err, "boom")
}

func TestManager_Courses(t *testing.T) {
	m, f := newTestManager(t, models.NetworkCellular, models.ModeAuto, passThrough)
	ctx := context.Background()

	_, err := m.Courses(ctx)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	user := models.User{ID: 1, Login: "alice"}
	f.session.SetUser(user)

	f.online.EXPECT().GetCourses(gomock.Any(), user).Return(service.MergeCoursesTask{
		Local:  []models.Course{{RefID: 1, Title: "A", Status: models.StatusLocal}},
		Remote: []models.Course{{RefID: 1, Title: "A-new"}, {RefID: 2, Title: "B"}},
	}, nil)

	courses, err := m.Courses(ctx)

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "A", courses[0].Title)
	assert.Equal(t, models.StatusLocal|models.StatusRemote, courses[0].Status)
	assert.Equal(t, models.StatusRemote, courses[1].Status)
}

func TestManager_ModeIsResolvedPerOperation(t *testing.T) {
	network := &switchableNetwork{state: models.NetworkWiFi}

	ctrl := gomock.NewController(t)
	offline := mock.NewMockConnection(ctrl)
	online := mock.NewMockConnection(ctrl)
	offline.EXPECT().Mode().Return(models.ModeOffline).AnyTimes()
	online.EXPECT().Mode().Return(models.ModeOnline).AnyTimes()

	m := NewManager(service.NewConnectionsOf(offline, online), passThrough, service.NewSession(), network, models.ModeAuto, logger.Nop())
	course := models.Course{RefID: 10}

	online.EXPECT().GetCourseInfo(gomock.Any(), course).Return(service.PassThroughTask{}, nil)
	_, err := m.Modules(context.Background(), course)
	require.NoError(t, err)

	network.state = models.NetworkNone
	offline.EXPECT().GetCourseInfo(gomock.Any(), course).Return(service.PassThroughTask{
		Result: service.TaskResult{Modules: []models.LearningModule{{RefID: 100}}},
	}, nil)

	modules, err := m.Modules(context.Background(), course)
	require.NoError(t, err)
	assert.Len(t, modules, 1)
}

func TestManager_Download(t *testing.T) {
	stored := models.LearningModule{ID: 9, RefID: 100, Status: models.StatusLocal}
	var executed []service.TaskKind
	runner := runnerFunc(func(_ context.Context, task service.Task) (service.TaskResult, error) {
		executed = append(executed, task.Kind())
		return service.TaskResult{Module: stored}, nil
	})

	m, f := newTestManager(t, models.NetworkWiFi, models.ModeAuto, runner)
	module := models.LearningModule{RefID: 100, Status: models.StatusRemote}

	f.online.EXPECT().DownloadModule(gomock.Any(), module).Return(service.DownloadAndUnpackTask{Module: module, URL: "u"}, nil)

	got, err := m.Download(context.Background(), module)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, []service.TaskKind{service.KindDownloadAndUnpack}, executed)
}

func TestManager_Download_Offline(t *testing.T) {
	m, f := newTestManager(t, models.NetworkEthernet, models.ModeAuto, passThrough)

	f.offline.EXPECT().DownloadModule(gomock.Any(), gomock.Any()).Return(nil, service.ErrDownloadOffline)

	_, err := m.Download(context.Background(), models.LearningModule{RefID: 100})

	assert.ErrorIs(t, err, app.ErrNetwork)
	assert.Equal(t, app.MsgServerUnreachable, app.UserMessage(err))
}

func TestManager_Desktop(t *testing.T) {
	m, f := newTestManager(t, models.NetworkWiFi, models.ModeAuto, passThrough)
	ctx := context.Background()

	user := models.User{ID: 1}
	f.session.SetUser(user)
	module := models.LearningModule{ID: 2, RefID: 100, Status: models.StatusLocal}

	f.online.EXPECT().PinToDesktop(gomock.Any(), module).Return(nil)
	f.online.EXPECT().UnpinFromDesktop(gomock.Any(), module).Return(nil)
	f.online.EXPECT().GetDesktopModules(gomock.Any(), user).Return([]models.LearningModule{module}, nil)

	require.NoError(t, m.PinToDesktop(ctx, module))
	require.NoError(t, m.UnpinFromDesktop(ctx, module))

	desktop, err := m.Desktop(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.LearningModule{module}, desktop)
}

func TestManager_Profile_Unauthorized(t *testing.T) {
	m, f := newTestManager(t, models.NetworkWiFi, models.ModeAuto, passThrough)

	f.online.EXPECT().GetUserInfo(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	_, err := m.Profile(context.Background())
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

type switchableNetwork struct {
	state models.NetworkState
}

func (s *switchableNetwork) NetworkState() models.NetworkState {
	return s.state
}
