package models

// Course is an LMS course the user is enrolled in.
//
// RefID is the server object id and the natural key used to match local
// and remote records.
type Course struct {
	ID          int64  `json:"-" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	RefID       int64  `json:"ref_id" db:"ref_id"`
	Status      Status `json:"-" db:"-"`

	// Owner is the user the course belongs to on this device.
	Owner User `json:"-" db:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
