package service

import (
	"context"
	"errors"
	"strings"

	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/pkg/cryptox"
	"github.com/driftlab/driftboard/pkg/slogx"
)

// AuthService implements registration and login. Session establishment is
// the HTTP layer's concern; these methods only resolve credentials to a
// user record or a field-error list.
type AuthService struct {
	Store store.Store
}

// Register validates the input, hashes the password and inserts the user.
// Validation failures and unique-constraint conflicts come back as field
// errors; only infrastructure failures surface on the error return.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (domain.User, []domain.FieldError, error) {
	if fieldErrs := ValidateRegister(email, username, password); len(fieldErrs) > 0 {
		return domain.User{}, fieldErrs, nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, nil, err
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUsername):
			return domain.User{}, []domain.FieldError{domain.NewFieldError("username", "username already taken")}, nil
		case errors.Is(err, store.ErrDuplicateEmail):
			return domain.User{}, []domain.FieldError{domain.NewFieldError("email", "email already taken")}, nil
		}
		return domain.User{}, nil, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, nil, nil
}

// Login authenticates by username-or-email plus password. Identifiers
// containing "@" are treated as emails, everything else as usernames.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (domain.User, []domain.FieldError, error) {
	log := slogx.FromContext(ctx)

	byEmail := strings.Contains(usernameOrEmail, "@")
	if !byEmail && len(usernameOrEmail) <= 2 {
		return domain.User{}, []domain.FieldError{domain.NewFieldError("usernameOrEmail", "length must be greater than 2")}, nil
	}
	if len(password) <= 3 {
		return domain.User{}, []domain.FieldError{domain.NewFieldError("password", "length must be greater than 3")}, nil
	}

	var (
		user domain.User
		err  error
	)
	if byEmail {
		user, err = s.Store.Users().GetUserByEmail(ctx, usernameOrEmail)
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, []domain.FieldError{domain.NewFieldError("usernameOrEmail", "that username or email doesn't exist")}, nil
		}
		return domain.User{}, nil, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		log.Warn("login rejected, password mismatch", "user_id", user.ID)
		return domain.User{}, []domain.FieldError{domain.NewFieldError("password", "incorrect password")}, nil
	}

	return user, nil, nil
}

// CurrentUser resolves a session-bound user id to its user record. Returns
// store.ErrNotFound when the account no longer exists.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
