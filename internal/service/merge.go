package service

import (
	"github.com/MKhiriev/go-lms-offline/models"
)

// MergeCourses unions the local and remote course lists by ref_id.
//
// Local items come first in their input order and keep their field
// values; a local item also reported by the server gets status
// Local|Remote. Remote items unknown locally follow in server order with
// status Remote. A ref_id the server reports twice is taken once. Nil
// inputs count as empty lists.
func MergeCourses(local, remote []models.Course) []models.Course {
	return mergeByRefID(local, remote,
		func(c models.Course) int64 { return c.RefID },
		func(c *models.Course) { c.Status = models.StatusLocal | models.StatusRemote },
		func(c models.Course) models.Course {
			c.Status = models.StatusRemote
			return c
		},
	)
}

// MergeLearningModules unions the local and remote modules of course by
// ref_id the same way [MergeCourses] does. Appended remote modules are not
// pinned, have no chapters and are attached to course.
func MergeLearningModules(course models.Course, local, remote []models.LearningModule) []models.LearningModule {
	return mergeByRefID(local, remote,
		func(m models.LearningModule) int64 { return m.RefID },
		func(m *models.LearningModule) { m.Status = models.StatusLocal | models.StatusRemote },
		func(m models.LearningModule) models.LearningModule {
			m.Status = models.StatusRemote
			m.OnDesktop = false
			m.Chapters = []models.Chapter{}
			m.Course = course
			return m
		},
	)
}

// mergeByRefID makes one pass over local to build the ref_id index and one
// pass over remote to classify every remote item as matched or new.
func mergeByRefID[T any](local, remote []T, refID func(T) int64, matched func(*T), adopt func(T) T) []T {
	merged := make([]T, len(local), len(local)+len(remote))
	copy(merged, local)

	localIndex := make(map[int64]int, len(local))
	for i, item := range merged {
		if _, ok := localIndex[refID(item)]; !ok {
			localIndex[refID(item)] = i
		}
	}

	appended := make(map[int64]struct{}, len(remote))
	for _, item := range remote {
		key := refID(item)

		if i, ok := localIndex[key]; ok {
			matched(&merged[i])
			continue
		}
		if _, ok := appended[key]; ok {
			continue
		}

		appended[key] = struct{}{}
		merged = append(merged, adopt(item))
	}

	return merged
}
