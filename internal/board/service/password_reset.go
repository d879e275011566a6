package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/driftboard/internal/board/cache"
	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/mail"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/pkg/cryptox"
	"github.com/driftlab/driftboard/pkg/slogx"
)

// resetKeyPrefix namespaces reset tokens in the shared cache alongside
// session records.
const resetKeyPrefix = "reset:"

// DefaultResetTokenTTL bounds how long an emailed reset link stays valid.
const DefaultResetTokenTTL = 3 * 24 * time.Hour

// PasswordResetService implements the forgot-password flow: a random token
// mapped in the cache to a user id, delivered out-of-band by email.
type PasswordResetService struct {
	Store  store.Store
	Cache  cache.Cache
	Mailer mail.Mailer

	// TokenTTL overrides DefaultResetTokenTTL when positive.
	TokenTTL time.Duration

	// ServerURL is the externally reachable base URL embedded in reset
	// links, e.g. "http://localhost:3000".
	ServerURL string
}

// Request issues a reset token for the account registered under email and
// mails a link carrying it. Whether the email is registered is never
// revealed to the caller: unknown addresses succeed silently.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}

	value := []byte(strconv.FormatInt(user.ID, 10))
	if err := s.Cache.Set(ctx, resetKeyPrefix+token, value, ttl); err != nil {
		return err
	}

	body := fmt.Sprintf(`<a href="%s/change-password/%s">reset password</a>`, s.ServerURL, token)
	if err := s.Mailer.Send(user.Email, "Change password", body); err != nil {
		// Mail dispatch is fire-and-forget from the caller's perspective.
		log.Error("password reset mail dispatch failed", "user_id", user.ID, "error", err)
	}

	return nil
}

// Complete exchanges a valid token for a password change. The token is
// invalidated on first successful use.
func (s *PasswordResetService) Complete(ctx context.Context, token, newPassword string) (domain.User, []domain.FieldError, error) {
	log := slogx.FromContext(ctx)

	if len(newPassword) <= 3 {
		return domain.User{}, []domain.FieldError{domain.NewFieldError("newPassword", "length must be greater than 3")}, nil
	}

	key := resetKeyPrefix + token
	value, err := s.Cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return domain.User{}, []domain.FieldError{domain.NewFieldError("token", "token expired")}, nil
		}
		return domain.User{}, nil, err
	}

	userID, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("corrupt reset token mapping: %w", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, []domain.FieldError{domain.NewFieldError("token", "user no longer exists")}, nil
		}
		return domain.User{}, nil, err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return domain.User{}, nil, err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return domain.User{}, nil, err
	}

	// Single use: a token that changed a password must not change another.
	if err := s.Cache.Del(ctx, key); err != nil {
		log.Error("reset token invalidation failed", "user_id", user.ID, "error", err)
	}

	user, err = s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, nil, nil
}
