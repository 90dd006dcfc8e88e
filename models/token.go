package models

import "time"

// UserAccess is the session state kept after a successful login.
//
// In online mode it carries the OAuth2 tokens issued by the LMS together
// with the submitted credentials, which are needed to re-run the password
// grant once the access token expires. In offline mode only Login and
// Password are set.
type UserAccess struct {
	Login        string
	Password     string
	AccessToken  string
	RefreshToken string
	TokenType    string

	// ExpiresAt is the absolute moment after which AccessToken must not be
	// used. It already includes the safety margin.
	ExpiresAt time.Time
}

// Credentials returns the login form that produced this session.
func (a UserAccess) Credentials() Credentials {
	return Credentials{Login: a.Login, Password: a.Password}
}

// Expired reports whether the access token is missing or past its expiry
// at the given moment.
func (a UserAccess) Expired(now time.Time) bool {
	if a.AccessToken == "" {
		return true
	}
	if a.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(a.ExpiresAt)
}
