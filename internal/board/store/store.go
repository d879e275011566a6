package store

import (
	"context"
	"errors"
	"time"

	"github.com/driftlab/driftboard/internal/board/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// Unique-constraint violations are classified by column so callers can
	// attribute the conflict to the right input field.
	ErrDuplicateUsername = errors.New("store: username already exists")
	ErrDuplicateEmail    = errors.New("store: email already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned id. Unique
	// violations come back as ErrDuplicateUsername or ErrDuplicateEmail.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used for username-based login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used for email-based login and password reset.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error
}

type Posts interface {
	// CreatePost inserts a new post and returns the assigned id.
	CreatePost(ctx context.Context, p domain.Post) (int64, error)

	// GetPostByID returns a post by id.
	GetPostByID(ctx context.Context, id int64) (domain.Post, error)

	// ListPosts returns up to limit posts ordered newest-first
	// (created_at DESC, id DESC as the tie-break). A non-zero before
	// restricts results to posts strictly older than that instant.
	ListPosts(ctx context.Context, limit int, before time.Time) ([]domain.Post, error)

	// UpdatePostTitle updates only the title and bumps updated_at,
	// returning ErrNotFound when no such post exists.
	UpdatePostTitle(ctx context.Context, id int64, title string) error

	// DeletePost removes a post by id. Deleting an absent post is not an
	// error.
	DeletePost(ctx context.Context, id int64) error
}
