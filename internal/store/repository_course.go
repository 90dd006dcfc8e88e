package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/models"
)

// GetCourses implements [LocalStore]. Every returned course has status
// Local and user as its owner.
func (s *localStore) GetCourses(ctx context.Context, user models.User) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	var courses []models.Course
	if err := s.db.selectAll(ctx, &courses, selectCoursesQuery(s.db.psql, user.ID)); err != nil {
		log.Err(err).Str("func", "*localStore.GetCourses").Int64("user_id", user.ID).Msg("error selecting courses")
		return nil, err
	}

	for i := range courses {
		courses[i].Status = models.StatusLocal
		courses[i].Owner = user
	}

	return courses, nil
}

// UpsertCourse implements [LocalStore]. course.Owner must be a stored user.
func (s *localStore) UpsertCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if course.Owner.ID == 0 {
		return models.Course{}, fmt.Errorf("%w: course %d", ErrMissingOwner, course.RefID)
	}

	if err := s.db.upsertReturning(ctx, upsertCourseQuery(s.db.psql, course), &course.ID); err != nil {
		log.Err(err).Str("func", "*localStore.UpsertCourse").Int64("ref_id", course.RefID).Msg("error saving course")
		return models.Course{}, err
	}

	course.Status |= models.StatusLocal
	return course, nil
}
