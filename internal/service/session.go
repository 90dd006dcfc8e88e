package service

import (
	"sync"

	"github.com/MKhiriev/go-lms-offline/models"
)

// Session holds the state of the current login shared by both connection
// variants, so switching modes between operations keeps the user signed
// in.
type Session struct {
	mu      sync.RWMutex
	access  models.UserAccess
	user    models.User
	hasUser bool
}

func NewSession() *Session {
	return &Session{}
}

// Access returns the stored credentials and tokens.
func (s *Session) Access() models.UserAccess {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) SetAccess(access models.UserAccess) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
}

// User returns the stored user of the session. ok is false until a user
// has been stored.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.hasUser
}

func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.hasUser = true
}

// LoggedIn reports whether credentials have been accepted in either mode.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access.Login != ""
}

// Clear forgets the credentials, tokens and user.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = models.UserAccess{}
	s.user = models.User{}
	s.hasUser = false
}
