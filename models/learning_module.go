package models

// LearningModule is a downloadable unit of course content.
//
// OnDesktop (pinned for quick access) is independent from Status
// (download/sync state). Chapters are populated only after the module was
// ingested or hydrated from the local store.
type LearningModule struct {
	ID          int64  `json:"-" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	RefID       int64  `json:"ref_id" db:"ref_id"`
	OnDesktop   bool   `json:"-" db:"on_desktop"`
	Status      Status `json:"-" db:"-"`

	Course   Course    `json:"-" db:"-"`
	Chapters []Chapter `json:"-" db:"-"`

	// Directory is the path of the unpacked module while it is being
	// ingested. It is empty for stored and remote modules.
	Directory string `json:"-" db:"-"`
}

// TableName returns the name of the database table
// associated with the LearningModule model.
func (m LearningModule) TableName() string {
	return "learning_modules"
}

// Chapter is a top-level node of a module's structure tree.
// ExportID is scoped to a single module export and is unrelated to RefID.
type Chapter struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	ExportID int64  `db:"export_id"`
	Position int    `db:"position"`

	// LearningModuleID points back to the owning module.
	LearningModuleID int64 `db:"lm_id"`

	Pages []Page `db:"-"`
}

// TableName returns the name of the database table
// associated with the Chapter model.
func (c Chapter) TableName() string {
	return "chapters"
}

// Page is a readable unit of a chapter. Content is HTML.
type Page struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Content  string `db:"content"`
	ExportID int64  `db:"export_id"`
	Position int    `db:"position"`

	// ChapterID points back to the owning chapter.
	ChapterID int64 `db:"chapter_id"`
}

// TableName returns the name of the database table
// associated with the Page model.
func (p Page) TableName() string {
	return "pages"
}

// MediaObject describes one media file of a module export. It only lives
// during ingestion and is used to resolve media placeholders in pages.
type MediaObject struct {
	MobID        int64
	Width        int
	Height       int
	Halign       string
	Caption      string
	Location     string
	LocationType string
	Format       string
}
