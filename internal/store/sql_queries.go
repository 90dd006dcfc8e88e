package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lms-offline/models"
)

// Builders of the statements used by the store. All upserts rely on the
// UNIQUE constraints of the schema and return the id of the affected row.

var (
	usersTable    = models.User{}.TableName()
	coursesTable  = models.Course{}.TableName()
	modulesTable  = models.LearningModule{}.TableName()
	chaptersTable = models.Chapter{}.TableName()
	pagesTable    = models.Page{}.TableName()
)

func upsertUserQuery(psql squirrel.StatementBuilderType, user models.User) squirrel.Sqlizer {
	return psql.Insert(usersTable).
		Columns("login", "password", "firstname", "lastname", "avatar").
		Values(user.Login, user.Password, user.Firstname, user.Lastname, user.Avatar).
		Suffix(`ON CONFLICT (login, password) DO UPDATE SET
			firstname = excluded.firstname,
			lastname = excluded.lastname,
			avatar = excluded.avatar
			RETURNING id`)
}

func findUserQuery(psql squirrel.StatementBuilderType, login, password string) squirrel.Sqlizer {
	return psql.Select("id", "login", "password", "firstname", "lastname", "avatar").
		From(usersTable).
		Where(squirrel.Eq{"login": login, "password": password})
}

func upsertCourseQuery(psql squirrel.StatementBuilderType, course models.Course) squirrel.Sqlizer {
	return psql.Insert(coursesTable).
		Columns("title", "description", "ref_id", "user_id").
		Values(course.Title, course.Description, course.RefID, course.Owner.ID).
		Suffix(`ON CONFLICT (ref_id, user_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description
			RETURNING id`)
}

func selectCoursesQuery(psql squirrel.StatementBuilderType, userID int64) squirrel.Sqlizer {
	return psql.Select("id", "title", "description", "ref_id").
		From(coursesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id")
}

// on_desktop is kept on conflict: re-downloading a module does not unpin it.
func upsertLearningModuleQuery(psql squirrel.StatementBuilderType, module models.LearningModule) squirrel.Sqlizer {
	return psql.Insert(modulesTable).
		Columns("title", "description", "ref_id", "on_desktop", "course_id").
		Values(module.Title, module.Description, module.RefID, module.OnDesktop, module.Course.ID).
		Suffix(`ON CONFLICT (ref_id, course_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description
			RETURNING id, on_desktop`)
}

var moduleColumns = []string{
	"lm.id AS id", "lm.title AS title", "lm.description AS description", "lm.ref_id AS ref_id", "lm.on_desktop AS on_desktop",
	"c.id AS course_id", "c.title AS course_title", "c.description AS course_description", "c.ref_id AS course_ref_id",
}

func selectCourseModulesQuery(psql squirrel.StatementBuilderType, course models.Course) squirrel.Sqlizer {
	return psql.Select(moduleColumns...).
		From(modulesTable + " lm").
		Join(coursesTable + " c ON c.id = lm.course_id").
		Where(squirrel.Eq{"c.ref_id": course.RefID, "c.user_id": course.Owner.ID}).
		OrderBy("lm.id")
}

func selectDesktopModulesQuery(psql squirrel.StatementBuilderType, userID int64) squirrel.Sqlizer {
	return psql.Select(moduleColumns...).
		From(modulesTable + " lm").
		Join(coursesTable + " c ON c.id = lm.course_id").
		Where(squirrel.Eq{"lm.on_desktop": true, "c.user_id": userID}).
		OrderBy("lm.id")
}

func setDesktopFlagQuery(psql squirrel.StatementBuilderType, moduleID int64, onDesktop bool) squirrel.Sqlizer {
	return psql.Update(modulesTable).
		Set("on_desktop", onDesktop).
		Where(squirrel.Eq{"id": moduleID})
}

func upsertChapterQuery(psql squirrel.StatementBuilderType, chapter models.Chapter) squirrel.Sqlizer {
	return psql.Insert(chaptersTable).
		Columns("title", "export_id", "position", "lm_id").
		Values(chapter.Title, chapter.ExportID, chapter.Position, chapter.LearningModuleID).
		Suffix(`ON CONFLICT (export_id, lm_id) DO UPDATE SET
			title = excluded.title,
			position = excluded.position
			RETURNING id`)
}

func deleteStaleChaptersQuery(psql squirrel.StatementBuilderType, moduleID int64, keep []int64) squirrel.Sqlizer {
	return psql.Delete(chaptersTable).
		Where(squirrel.Eq{"lm_id": moduleID}).
		Where(squirrel.NotEq{"export_id": keep})
}

func selectChaptersQuery(psql squirrel.StatementBuilderType, moduleID int64) squirrel.Sqlizer {
	return psql.Select("id", "title", "export_id", "position", "lm_id").
		From(chaptersTable).
		Where(squirrel.Eq{"lm_id": moduleID}).
		OrderBy("position", "id")
}

func upsertPageQuery(psql squirrel.StatementBuilderType, page models.Page) squirrel.Sqlizer {
	return psql.Insert(pagesTable).
		Columns("title", "content", "export_id", "position", "chapter_id").
		Values(page.Title, page.Content, page.ExportID, page.Position, page.ChapterID).
		Suffix(`ON CONFLICT (export_id, chapter_id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			position = excluded.position
			RETURNING id`)
}

func deleteStalePagesQuery(psql squirrel.StatementBuilderType, chapterID int64, keep []int64) squirrel.Sqlizer {
	return psql.Delete(pagesTable).
		Where(squirrel.Eq{"chapter_id": chapterID}).
		Where(squirrel.NotEq{"export_id": keep})
}

func selectModulePagesQuery(psql squirrel.StatementBuilderType, moduleID int64) squirrel.Sqlizer {
	return psql.Select("p.id AS id", "p.title AS title", "p.content AS content", "p.export_id AS export_id", "p.position AS position", "p.chapter_id AS chapter_id").
		From(pagesTable + " p").
		Join(chaptersTable + " c ON c.id = p.chapter_id").
		Where(squirrel.Eq{"c.lm_id": moduleID}).
		OrderBy("p.position", "p.id")
}
