package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/models"
)

// Authenticate implements [LocalStore]. The lookup is an exact match on
// login and password.
//
// Error handling:
//   - no matching row → [ErrUserNotFound];
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (s *localStore) Authenticate(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := s.db.get(ctx, &user, findUserQuery(s.db.psql, login, password))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "*localStore.Authenticate").Str("login", login).Msg("no stored user matches credentials")
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*localStore.Authenticate").Str("login", login).Msg("error looking up user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpsertUser implements [LocalStore]. Profile fields of an existing row are
// overwritten with the values of user.
func (s *localStore) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.db.upsertReturning(ctx, upsertUserQuery(s.db.psql, user), &user.ID); err != nil {
		log.Err(err).Str("func", "*localStore.UpsertUser").Str("login", user.Login).Msg("error saving user")
		return models.User{}, err
	}

	return user, nil
}
