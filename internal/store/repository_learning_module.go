package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/models"
)

// moduleRow is a learning_modules row joined with its course.
type moduleRow struct {
	ID                int64  `db:"id"`
	Title             string `db:"title"`
	Description       string `db:"description"`
	RefID             int64  `db:"ref_id"`
	OnDesktop         bool   `db:"on_desktop"`
	CourseID          int64  `db:"course_id"`
	CourseTitle       string `db:"course_title"`
	CourseDescription string `db:"course_description"`
	CourseRefID       int64  `db:"course_ref_id"`
}

func (r moduleRow) toModel(owner models.User) models.LearningModule {
	return models.LearningModule{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		RefID:       r.RefID,
		OnDesktop:   r.OnDesktop,
		Status:      models.StatusLocal,
		Course: models.Course{
			ID:          r.CourseID,
			Title:       r.CourseTitle,
			Description: r.CourseDescription,
			RefID:       r.CourseRefID,
			Status:      models.StatusLocal,
			Owner:       owner,
		},
	}
}

// GetLearningModules implements [LocalStore]. The course is matched by
// ref_id and owner, so a course known only remotely yields an empty list.
func (s *localStore) GetLearningModules(ctx context.Context, course models.Course) ([]models.LearningModule, error) {
	log := logger.FromContext(ctx)

	var rows []moduleRow
	if err := s.db.selectAll(ctx, &rows, selectCourseModulesQuery(s.db.psql, course)); err != nil {
		log.Err(err).Str("func", "*localStore.GetLearningModules").Int64("ref_id", course.RefID).Msg("error selecting learning modules")
		return nil, err
	}

	modules := s.toModels(rows, course.Owner)
	if err := s.hydrate(ctx, modules); err != nil {
		log.Err(err).Str("func", "*localStore.GetLearningModules").Int64("ref_id", course.RefID).Msg("error loading chapters")
		return nil, err
	}

	return modules, nil
}

// GetDesktopModules implements [LocalStore].
func (s *localStore) GetDesktopModules(ctx context.Context, user models.User) ([]models.LearningModule, error) {
	log := logger.FromContext(ctx)

	var rows []moduleRow
	if err := s.db.selectAll(ctx, &rows, selectDesktopModulesQuery(s.db.psql, user.ID)); err != nil {
		log.Err(err).Str("func", "*localStore.GetDesktopModules").Int64("user_id", user.ID).Msg("error selecting desktop modules")
		return nil, err
	}

	modules := s.toModels(rows, user)
	if err := s.hydrate(ctx, modules); err != nil {
		log.Err(err).Str("func", "*localStore.GetDesktopModules").Int64("user_id", user.ID).Msg("error loading chapters")
		return nil, err
	}

	return modules, nil
}

// SetDesktopFlag implements [LocalStore]. The module must be stored, i.e.
// carry an id.
func (s *localStore) SetDesktopFlag(ctx context.Context, module models.LearningModule, onDesktop bool) error {
	log := logger.FromContext(ctx)

	if module.ID == 0 {
		return fmt.Errorf("%w: ref_id %d", ErrLearningModuleNotFound, module.RefID)
	}

	res, err := s.db.exec(ctx, setDesktopFlagQuery(s.db.psql, module.ID, onDesktop))
	if err != nil {
		log.Err(err).Str("func", "*localStore.SetDesktopFlag").Int64("ref_id", module.RefID).Msg("error updating desktop flag")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: ref_id %d", ErrLearningModuleNotFound, module.RefID)
	}

	return nil
}

// UpsertLearningModule implements [LocalStore]. The owning course, the
// module, its chapters and pages are written parent before children in one
// transaction; any failure rolls back the whole module.
func (s *localStore) UpsertLearningModule(ctx context.Context, module models.LearningModule) (models.LearningModule, error) {
	log := logger.FromContext(ctx)

	// chapters must not alias the caller's slice
	module.Chapters = append([]models.Chapter(nil), module.Chapters...)

	err := s.db.RunInTx(ctx, func(tx *DB) error {
		txStore := s.withTx(tx)

		course, err := txStore.UpsertCourse(ctx, module.Course)
		if err != nil {
			return err
		}
		module.Course = course

		if err = tx.upsertReturning(ctx, upsertLearningModuleQuery(tx.psql, module), &module.ID, &module.OnDesktop); err != nil {
			return err
		}

		keep := make([]int64, 0, len(module.Chapters))
		for i := range module.Chapters {
			chapter := module.Chapters[i]
			chapter.LearningModuleID = module.ID
			chapter.Position = i

			if chapter, err = txStore.UpsertChapter(ctx, chapter); err != nil {
				return err
			}
			module.Chapters[i] = chapter
			keep = append(keep, chapter.ExportID)
		}

		_, err = tx.exec(ctx, deleteStaleChaptersQuery(tx.psql, module.ID, keep))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*localStore.UpsertLearningModule").Int64("ref_id", module.RefID).Msg("error saving learning module")
		return models.LearningModule{}, err
	}

	module.Status |= models.StatusLocal
	return module, nil
}

// UpsertChapter implements [LocalStore]. Pages are written in the order of
// chapter.Pages and pages no longer present are removed.
func (s *localStore) UpsertChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	log := logger.FromContext(ctx)

	if chapter.LearningModuleID == 0 {
		return models.Chapter{}, fmt.Errorf("%w: chapter %d", ErrMissingOwner, chapter.ExportID)
	}

	// pages must not alias the caller's slice
	chapter.Pages = append([]models.Page(nil), chapter.Pages...)

	err := s.db.RunInTx(ctx, func(tx *DB) error {
		txStore := s.withTx(tx)

		if err := tx.upsertReturning(ctx, upsertChapterQuery(tx.psql, chapter), &chapter.ID); err != nil {
			return err
		}

		keep := make([]int64, 0, len(chapter.Pages))
		for i := range chapter.Pages {
			page := chapter.Pages[i]
			page.ChapterID = chapter.ID
			page.Position = i

			page, err := txStore.UpsertPage(ctx, page)
			if err != nil {
				return err
			}
			chapter.Pages[i] = page
			keep = append(keep, page.ExportID)
		}

		_, err := tx.exec(ctx, deleteStalePagesQuery(tx.psql, chapter.ID, keep))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*localStore.UpsertChapter").Int64("export_id", chapter.ExportID).Msg("error saving chapter")
		return models.Chapter{}, err
	}

	return chapter, nil
}

// UpsertPage implements [LocalStore].
func (s *localStore) UpsertPage(ctx context.Context, page models.Page) (models.Page, error) {
	log := logger.FromContext(ctx)

	if page.ChapterID == 0 {
		return models.Page{}, fmt.Errorf("%w: page %d", ErrMissingOwner, page.ExportID)
	}

	if err := s.db.upsertReturning(ctx, upsertPageQuery(s.db.psql, page), &page.ID); err != nil {
		log.Err(err).Str("func", "*localStore.UpsertPage").Int64("export_id", page.ExportID).Msg("error saving page")
		return models.Page{}, err
	}

	return page, nil
}

func (s *localStore) toModels(rows []moduleRow, owner models.User) []models.LearningModule {
	modules := make([]models.LearningModule, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, row.toModel(owner))
	}
	return modules
}

// hydrate loads chapters and pages of every module. Modules touch disjoint
// rows, so they are loaded concurrently.
func (s *localStore) hydrate(ctx context.Context, modules []models.LearningModule) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrationLimit)

	for i := range modules {
		g.Go(func() error {
			chapters, err := s.chapters(gctx, modules[i].ID)
			if err != nil {
				return err
			}
			modules[i].Chapters = chapters
			return nil
		})
	}

	return g.Wait()
}

func (s *localStore) chapters(ctx context.Context, moduleID int64) ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.db.selectAll(ctx, &chapters, selectChaptersQuery(s.db.psql, moduleID)); err != nil {
		return nil, err
	}

	var pages []models.Page
	if err := s.db.selectAll(ctx, &pages, selectModulePagesQuery(s.db.psql, moduleID)); err != nil {
		return nil, err
	}

	byChapter := make(map[int64]int, len(chapters))
	for i := range chapters {
		byChapter[chapters[i].ID] = i
		chapters[i].Pages = []models.Page{}
	}
	for _, page := range pages {
		if i, ok := byChapter[page.ChapterID]; ok {
			chapters[i].Pages = append(chapters[i].Pages, page)
		}
	}

	return chapters, nil
}
