package models

// User represents a student account known to the device.
// Login and Password together form the natural key used for offline
// authentication against the local store.
type User struct {
	// ID is assigned by the local store on first insert.
	ID int64 `json:"-" db:"id"`

	Login    string `json:"login" db:"login"`
	Password string `json:"-" db:"password"`

	// Profile fields are filled from the server's userinfo endpoint and
	// are empty until the first successful online profile fetch.
	Firstname string `json:"firstname" db:"firstname"`
	Lastname  string `json:"lastname" db:"lastname"`
	Avatar    string `json:"avatar" db:"avatar"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login form submitted by the user.
type Credentials struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the payload returned by the server's userinfo route.
type UserProfile struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Avatar    string `json:"avatar"`
}
