package workers

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/mock"
	"github.com/MKhiriev/go-lms-offline/internal/utils"
)

var cleanerNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCleaner(t *testing.T, maxAge time.Duration) (*CacheCleaner, afero.Fs) {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/cache", 0o755))

	fs := filesystem.New(memFs, config.ClientFiles{TempDir: "/cache", PersistentDir: "/data"}, nil, utils.NewUUIDGenerator(), logger.Nop())
	cleaner := NewCacheCleaner(fs, maxAge, logger.Nop())
	cleaner.now = func() time.Time { return cleanerNow }
	return cleaner, memFs
}

func touch(t *testing.T, fs afero.Fs, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0o644))
	require.NoError(t, fs.Chtimes(path, cleanerNow.Add(-age), cleanerNow.Add(-age)))
}

func TestCacheCleaner_RemovesOldEntries(t *testing.T) {
	cleaner, fs := newTestCleaner(t, time.Hour)

	require.NoError(t, fs.MkdirAll("/cache/old-dir/MediaObjects", 0o755))
	touch(t, fs, "/cache/old-dir/manifest.xml", 0)
	require.NoError(t, fs.Chtimes("/cache/old-dir", cleanerNow.Add(-2*time.Hour), cleanerNow.Add(-2*time.Hour)))
	touch(t, fs, "/cache/old.zip", 3*time.Hour)
	touch(t, fs, "/cache/fresh.zip", time.Minute)

	require.NoError(t, cleaner.Run(context.Background()))

	for path, want := range map[string]bool{
		"/cache/old-dir":   false,
		"/cache/old.zip":   false,
		"/cache/fresh.zip": true,
		"/cache":           true,
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.Equal(t, want, exists, path)
	}
}

func TestCacheCleaner_ZeroMaxAgeClearsEverything(t *testing.T) {
	cleaner, fs := newTestCleaner(t, 0)

	touch(t, fs, "/cache/a.zip", 0)
	touch(t, fs, "/cache/b.zip", time.Hour)

	require.NoError(t, cleaner.Run(context.Background()))

	entries, err := afero.ReadDir(fs, "/cache")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCacheCleaner_MissingRootIsNotAnError(t *testing.T) {
	cleaner, fs := newTestCleaner(t, time.Hour)
	require.NoError(t, fs.RemoveAll("/cache"))

	assert.NoError(t, cleaner.Run(context.Background()))
}

func TestCacheCleaner_DeleteFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mock.NewMockFilesystem(ctrl)

	cleaner := NewCacheCleaner(fs, time.Hour, logger.Nop())
	cleaner.now = func() time.Time { return cleanerNow }

	fs.EXPECT().Root(filesystem.Temporary).Return("/cache")
	fs.EXPECT().ListDirectoryEntries("/cache").Return([]filesystem.Entry{
		{Name: "a", ModTime: cleanerNow.Add(-2 * time.Hour)},
		{Name: "b", ModTime: cleanerNow.Add(-2 * time.Hour)},
	}, nil)
	fs.EXPECT().DeleteRecursively("/cache", "a").Return(filesystem.ErrDeleteFailed)
	fs.EXPECT().DeleteRecursively("/cache", "b").Return(nil)

	err := cleaner.Run(context.Background())
	assert.ErrorIs(t, err, filesystem.ErrDeleteFailed)
}

func TestCacheCleaner_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mock.NewMockFilesystem(ctrl)

	fs.EXPECT().Root(filesystem.Temporary).Return("/cache")
	fs.EXPECT().ListDirectoryEntries("/cache").Return(nil, filesystem.ErrReadFailed)

	err := NewCacheCleaner(fs, time.Hour, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, filesystem.ErrReadFailed)
}
