package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lms-offline/internal/adapter"
	"github.com/MKhiriev/go-lms-offline/internal/app"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/mock"
	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var testCreds = models.Credentials{Login: "alice", Password: "secret"}

func freshAccess(token string) models.UserAccess {
	return models.UserAccess{
		Login:       testCreds.Login,
		Password:    testCreds.Password,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   testNow.Add(time.Hour),
	}
}

func newTestServerConnection(t *testing.T) (service.Connection, *mock.MockLocalStore, *mock.MockServerAdapter, *service.Session) {
	ctrl := gomock.NewController(t)
	localStore := mock.NewMockLocalStore(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := service.NewSession()

	conn := service.NewServerConnection(localStore, serverAdapter, session, logger.Nop())
	service.SetClock(conn, func() time.Time { return testNow })

	return conn, localStore, serverAdapter, session
}

func TestServerConnection_Login(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(freshAccess("t1"), nil)

	task, err := conn.Login(ctx, testCreds)

	require.NoError(t, err)
	assert.Equal(t, models.ModeOnline, conn.Mode())
	assert.Equal(t, service.PassThroughTask{Result: service.TaskResult{User: models.User{Login: "alice", Password: "secret"}}}, task)
	assert.Equal(t, "t1", session.Access().AccessToken)
}

func TestServerConnection_Login_Rejected(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(models.UserAccess{}, adapter.ErrInvalidCredentials)

	task, err := conn.Login(ctx, testCreds)

	assert.Nil(t, task)
	assert.ErrorIs(t, err, app.ErrAuthentication)
	assert.False(t, session.LoggedIn())
}

func TestServerConnection_Login_Unreachable(t *testing.T) {
	conn, _, serverAdapter, _ := newTestServerConnection(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(models.UserAccess{}, adapter.ErrServerUnreachable)

	_, err := conn.Login(ctx, testCreds)
	assert.ErrorIs(t, err, app.ErrNetwork)
	assert.NotEqual(t, app.UserMessage(err), app.UserMessage(adapter.ErrInvalidCredentials))
}

func TestServerConnection_GetUserInfo(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	access := freshAccess("t1")
	session.SetAccess(access)
	serverAdapter.EXPECT().GetUserInfo(ctx, access).Return(models.UserProfile{Firstname: "Alice", Lastname: "Smith", Avatar: "a.png"}, nil)

	task, err := conn.GetUserInfo(ctx)

	require.NoError(t, err)
	assert.Equal(t, service.SaveUserDataTask{User: models.User{
		Login: "alice", Password: "secret", Firstname: "Alice", Lastname: "Smith", Avatar: "a.png",
	}}, task)
}

func TestServerConnection_NotLoggedIn(t *testing.T) {
	conn, localStore, _, _ := newTestServerConnection(t)
	ctx := context.Background()

	_, err := conn.GetUserInfo(ctx)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	_, err = conn.DownloadModule(ctx, models.LearningModule{RefID: 100})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	localStore.EXPECT().GetCourses(ctx, gomock.Any()).Return(nil, nil)
	_, err = conn.GetCourses(ctx, models.User{ID: 1})
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

func TestServerConnection_ExpiredTokenIsRenewedFirst(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	expired := freshAccess("old")
	expired.ExpiresAt = testNow.Add(-time.Second)
	session.SetAccess(expired)

	renewed := freshAccess("new")
	gomock.InOrder(
		serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(renewed, nil),
		serverAdapter.EXPECT().GetUserInfo(ctx, renewed).Return(models.UserProfile{Firstname: "Alice"}, nil),
	)

	_, err := conn.GetUserInfo(ctx)

	require.NoError(t, err)
	assert.Equal(t, "new", session.Access().AccessToken)
}

func TestServerConnection_OfflineSessionGetsToken(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	// a session started offline carries credentials but no token
	session.SetAccess(models.UserAccess{Login: "alice", Password: "secret"})

	renewed := freshAccess("new")
	gomock.InOrder(
		serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(renewed, nil),
		serverAdapter.EXPECT().DownloadURL(renewed, int64(100)).Return("http://lms/download/100?access_token=new", nil),
	)

	task, err := conn.DownloadModule(ctx, models.LearningModule{RefID: 100})

	require.NoError(t, err)
	download, ok := task.(service.DownloadAndUnpackTask)
	require.True(t, ok)
	assert.Equal(t, "http://lms/download/100?access_token=new", download.URL)
	assert.Equal(t, int64(100), download.Module.RefID)
	assert.NotEmpty(t, download.Headers)
}

func TestServerConnection_GetCourses(t *testing.T) {
	conn, localStore, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	access := freshAccess("t1")
	session.SetAccess(access)

	user := models.User{ID: 3, Login: "alice"}
	local := []models.Course{{ID: 1, RefID: 1, Title: "A", Status: models.StatusLocal, Owner: user}}
	remote := []models.Course{{RefID: 1, Title: "A-new", Status: models.StatusRemote}, {RefID: 2, Title: "B", Status: models.StatusRemote}}

	gomock.InOrder(
		localStore.EXPECT().GetCourses(ctx, user).Return(local, nil),
		serverAdapter.EXPECT().GetCourses(ctx, access).Return(remote, nil),
	)

	task, err := conn.GetCourses(ctx, user)
	require.NoError(t, err)

	merge, ok := task.(service.MergeCoursesTask)
	require.True(t, ok)
	assert.Equal(t, local, merge.Local)
	require.Len(t, merge.Remote, 2)
	for _, course := range merge.Remote {
		assert.Equal(t, user, course.Owner)
	}
}

func TestServerConnection_GetCourses_RemoteFailure(t *testing.T) {
	conn, localStore, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	session.SetAccess(freshAccess("t1"))
	localStore.EXPECT().GetCourses(ctx, gomock.Any()).Return(nil, nil)
	serverAdapter.EXPECT().GetCourses(ctx, gomock.Any()).Return(nil, adapter.ErrBadGateway)

	task, err := conn.GetCourses(ctx, models.User{ID: 3})

	assert.Nil(t, task)
	assert.ErrorIs(t, err, app.ErrNetwork)
}

func TestServerConnection_GetCourses_LocalFailure(t *testing.T) {
	conn, localStore, _, session := newTestServerConnection(t)
	ctx := context.Background()

	session.SetAccess(freshAccess("t1"))
	localStore.EXPECT().GetCourses(ctx, gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := conn.GetCourses(ctx, models.User{ID: 3})
	assert.ErrorIs(t, err, app.ErrStorage)
}

func TestServerConnection_GetCourseInfo(t *testing.T) {
	conn, localStore, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	stale := freshAccess("stale")
	session.SetAccess(stale)
	renewed := freshAccess("new")

	course := models.Course{ID: 1, RefID: 10, Owner: models.User{ID: 3}}
	local := []models.LearningModule{{ID: 5, RefID: 100, Status: models.StatusLocal, Course: course}}
	remote := []models.LearningModule{{RefID: 100}, {RefID: 101}}

	gomock.InOrder(
		localStore.EXPECT().GetLearningModules(ctx, course).Return(local, nil),
		serverAdapter.EXPECT().GetCourseInfo(ctx, stale, int64(10)).Return(nil, adapter.ErrUnauthorized),
		serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(renewed, nil),
		serverAdapter.EXPECT().GetCourseInfo(ctx, renewed, int64(10)).Return(remote, nil),
	)

	task, err := conn.GetCourseInfo(ctx, course)

	require.NoError(t, err)
	assert.Equal(t, service.MergeModulesTask{Course: course, Local: local, Remote: remote}, task)
	assert.Equal(t, "new", session.Access().AccessToken)
}

func TestServerConnection_GetCourseInfo_RejectedTwice(t *testing.T) {
	conn, localStore, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	stale := freshAccess("stale")
	session.SetAccess(stale)
	renewed := freshAccess("new")
	course := models.Course{RefID: 10}

	gomock.InOrder(
		localStore.EXPECT().GetLearningModules(ctx, course).Return(nil, nil),
		serverAdapter.EXPECT().GetCourseInfo(ctx, stale, int64(10)).Return(nil, adapter.ErrUnauthorized),
		serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(renewed, nil),
		serverAdapter.EXPECT().GetCourseInfo(ctx, renewed, int64(10)).Return(nil, adapter.ErrUnauthorized),
	)

	task, err := conn.GetCourseInfo(ctx, course)

	assert.Nil(t, task)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestServerConnection_RenewalRejected(t *testing.T) {
	conn, _, serverAdapter, session := newTestServerConnection(t)
	ctx := context.Background()

	expired := freshAccess("old")
	expired.ExpiresAt = testNow
	session.SetAccess(expired)

	serverAdapter.EXPECT().Authenticate(ctx, testCreds).Return(models.UserAccess{}, adapter.ErrInvalidCredentials)

	task, err := conn.GetUserInfo(ctx)

	assert.Nil(t, task)
	assert.ErrorIs(t, err, adapter.ErrInvalidCredentials)
}

func TestServerConnection_DesktopGoesToStore(t *testing.T) {
	conn, localStore, _, _ := newTestServerConnection(t)
	ctx := context.Background()

	module := models.LearningModule{ID: 2, RefID: 100, Status: models.StatusLocal}
	localStore.EXPECT().SetDesktopFlag(ctx, module, true).Return(nil)
	localStore.EXPECT().GetDesktopModules(ctx, models.User{ID: 3}).Return(nil, nil)

	require.NoError(t, conn.PinToDesktop(ctx, module))
	assert.ErrorIs(t, conn.PinToDesktop(ctx, models.LearningModule{RefID: 101, Status: models.StatusRemote}), service.ErrModuleNotLocal)

	_, err := conn.GetDesktopModules(ctx, models.User{ID: 3})
	require.NoError(t, err)
}

func TestConnections_For(t *testing.T) {
	ctrl := gomock.NewController(t)
	offline := mock.NewMockConnection(ctrl)
	online := mock.NewMockConnection(ctrl)

	connections := service.NewConnectionsOf(offline, online)

	assert.Same(t, online, connections.For(models.ModeOnline))
	assert.Same(t, offline, connections.For(models.ModeOffline))
	assert.Same(t, offline, connections.For(models.ModeAuto))
}

func TestSession(t *testing.T) {
	session := service.NewSession()

	_, ok := session.User()
	assert.False(t, ok)
	assert.False(t, session.LoggedIn())

	session.SetAccess(freshAccess("t"))
	session.SetUser(models.User{ID: 1})
	assert.True(t, session.LoggedIn())

	session.Clear()
	_, ok = session.User()
	assert.False(t, ok)
	assert.Equal(t, models.UserAccess{}, session.Access())
}
