package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lms-offline/internal/service"
	"github.com/MKhiriev/go-lms-offline/models"
)

func TestMergeCourses_Scenario(t *testing.T) {
	local := []models.Course{{ID: 7, RefID: 1, Title: "A", Status: models.StatusLocal}}
	remote := []models.Course{
		{RefID: 1, Title: "A-new", Status: models.StatusRemote},
		{RefID: 2, Title: "B", Status: models.StatusRemote},
	}

	merged := service.MergeCourses(local, remote)

	require.Len(t, merged, 2)
	assert.Equal(t, models.Course{ID: 7, RefID: 1, Title: "A", Status: models.StatusLocal | models.StatusRemote}, merged[0])
	assert.Equal(t, models.Course{RefID: 2, Title: "B", Status: models.StatusRemote}, merged[1])
}

func TestMergeCourses_DoesNotModifyInput(t *testing.T) {
	local := []models.Course{{RefID: 1, Title: "A", Status: models.StatusLocal}}

	service.MergeCourses(local, []models.Course{{RefID: 1}})

	assert.Equal(t, models.StatusLocal, local[0].Status)
}

func TestMergeCourses_Idempotence(t *testing.T) {
	list := []models.Course{
		{RefID: 3, Title: "C", Status: models.StatusLocal},
		{RefID: 1, Title: "A", Status: models.StatusLocal},
		{RefID: 2, Title: "B", Status: models.StatusLocal},
	}

	merged := service.MergeCourses(list, list)

	require.Len(t, merged, len(list))
	for i, course := range merged {
		assert.Equal(t, list[i].RefID, course.RefID)
		assert.Equal(t, list[i].Title, course.Title)
		assert.Equal(t, models.StatusLocal|models.StatusRemote, course.Status)
	}
}

func TestMergeCourses_UnionProperty(t *testing.T) {
	tests := []struct {
		name   string
		local  []int64
		remote []int64
	}{
		{name: "disjoint", local: []int64{1, 2}, remote: []int64{3, 4, 5}},
		{name: "overlapping", local: []int64{1, 2, 3}, remote: []int64{2, 3, 4}},
		{name: "remote subset", local: []int64{1, 2, 3}, remote: []int64{3}},
		{name: "empty local", local: nil, remote: []int64{9, 8}},
		{name: "empty remote", local: []int64{5}, remote: nil},
		{name: "both empty", local: nil, remote: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := coursesWithRefs(tt.local, models.StatusLocal)
			remote := coursesWithRefs(tt.remote, models.StatusRemote)

			merged := service.MergeCourses(local, remote)

			known := make(map[int64]bool, len(tt.local))
			for _, ref := range tt.local {
				known[ref] = true
			}
			fresh := 0
			for _, ref := range tt.remote {
				if !known[ref] {
					fresh++
				}
			}

			require.NotNil(t, merged)
			assert.Len(t, merged, len(tt.local)+fresh)
			for i, course := range local {
				assert.Equal(t, course.RefID, merged[i].RefID)
				assert.Equal(t, course.Title, merged[i].Title)
				assert.True(t, merged[i].Status.Has(models.StatusLocal))
			}
			for _, course := range merged[len(local):] {
				assert.Equal(t, models.StatusRemote, course.Status)
			}
		})
	}
}

func TestMergeCourses_DuplicateRemoteTakenOnce(t *testing.T) {
	remote := []models.Course{{RefID: 4, Title: "first"}, {RefID: 4, Title: "second"}}

	merged := service.MergeCourses(nil, remote)

	require.Len(t, merged, 1)
	assert.Equal(t, "first", merged[0].Title)
	assert.Equal(t, models.StatusRemote, merged[0].Status)
}

func TestMergeLearningModules(t *testing.T) {
	course := models.Course{ID: 3, RefID: 10, Title: "Course"}
	local := []models.LearningModule{{
		ID: 1, RefID: 100, Title: "Stored", OnDesktop: true, Status: models.StatusLocal,
		Chapters: []models.Chapter{{Title: "Ch1"}},
	}}
	remote := []models.LearningModule{
		{RefID: 100, Title: "Renamed on server"},
		{RefID: 101, Title: "New", OnDesktop: true, Chapters: []models.Chapter{{Title: "ignored"}}},
	}

	merged := service.MergeLearningModules(course, local, remote)

	require.Len(t, merged, 2)

	assert.Equal(t, "Stored", merged[0].Title)
	assert.True(t, merged[0].OnDesktop)
	assert.Len(t, merged[0].Chapters, 1)
	assert.Equal(t, models.StatusLocal|models.StatusRemote, merged[0].Status)

	assert.Equal(t, int64(101), merged[1].RefID)
	assert.Equal(t, models.StatusRemote, merged[1].Status)
	assert.False(t, merged[1].OnDesktop)
	assert.NotNil(t, merged[1].Chapters)
	assert.Empty(t, merged[1].Chapters)
	assert.Equal(t, course, merged[1].Course)
}

func coursesWithRefs(refs []int64, status models.Status) []models.Course {
	courses := make([]models.Course, 0, len(refs))
	for _, ref := range refs {
		courses = append(courses, models.Course{RefID: ref, Title: "course", Status: status})
	}
	return courses
}
