package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/store"
	"github.com/MKhiriev/go-lms-offline/models"
)

// TestBuild_PersistAndReadBack ingests an export, stores the module and
// reads it back: every chapter and page keeps its title, content and order.
func TestBuild_PersistAndReadBack(t *testing.T) {
	ctx := context.Background()
	fs, mem := newTestFS(t)
	writeExport(t, mem, fullExport())

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	localStore := storages.LocalStore

	user, err := localStore.UpsertUser(ctx, models.User{Login: "student", Password: "secret"})
	require.NoError(t, err)

	module := testModule()
	module.Course = models.Course{Title: "Course", RefID: 10, Owner: user}

	built, err := Build(ctx, module, fs)
	require.NoError(t, err)
	built.Directory = ""

	_, err = localStore.UpsertLearningModule(ctx, built)
	require.NoError(t, err)

	modules, err := localStore.GetLearningModules(ctx, models.Course{RefID: 10, Owner: user})
	require.NoError(t, err)
	require.Len(t, modules, 1)

	got := modules[0]
	assert.Equal(t, built.RefID, got.RefID)
	assert.Equal(t, built.Title, got.Title)
	assert.True(t, got.Status.Has(models.StatusLocal))

	require.Len(t, got.Chapters, len(built.Chapters))
	for i, want := range built.Chapters {
		chapter := got.Chapters[i]
		assert.Equal(t, want.Title, chapter.Title)
		assert.Equal(t, want.ExportID, chapter.ExportID)

		require.Len(t, chapter.Pages, len(want.Pages))
		for j, wantPage := range want.Pages {
			assert.Equal(t, wantPage.Title, chapter.Pages[j].Title)
			assert.Equal(t, wantPage.ExportID, chapter.Pages[j].ExportID)
			assert.Equal(t, wantPage.Content, chapter.Pages[j].Content)
		}
	}

	// reading order of the structure document
	assert.Equal(t, []string{"Ch1", "Ch2"}, []string{got.Chapters[0].Title, got.Chapters[1].Title})
	assert.Equal(t, []string{"P1", "P2"}, []string{got.Chapters[0].Pages[0].Title, got.Chapters[0].Pages[1].Title})
	assert.Contains(t, got.Chapters[0].Pages[0].Content, `<img src="file:///data/100/MediaObjects/mm_42/pic.png">`)
}
