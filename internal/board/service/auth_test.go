package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/internal/board/store/drivers/sqlite"
	"github.com/driftlab/driftboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	t.Run("email must contain at sign", func(t *testing.T) {
		errs := ValidateRegister("not-an-email", "alice", "hunter2")
		require.Len(t, errs, 1)
		require.Equal(t, "email", errs[0].Field)
		require.Equal(t, "invalid email", errs[0].Message)
	})

	t.Run("short username reported alone even when password also short", func(t *testing.T) {
		errs := ValidateRegister("a@b.c", "ab", "x")
		require.Len(t, errs, 1)
		require.Equal(t, "username", errs[0].Field)
		require.Equal(t, "length must be greater than 3", errs[0].Message)
	})

	t.Run("short password", func(t *testing.T) {
		errs := ValidateRegister("a@b.c", "alice", "abc")
		require.Len(t, errs, 1)
		require.Equal(t, "password", errs[0].Field)
	})

	t.Run("valid input", func(t *testing.T) {
		require.Empty(t, ValidateRegister("a@b.c", "alice", "hunter2"))
	})
}

func TestRegisterCreatesUser(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	user, fieldErrs, err := svc.Register(ctx, "alice@example.org", "alice", "hunter2")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotZero(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.org", user.Email)
	require.NotEqual(t, "hunter2", user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	_, fieldErrs, err := svc.Register(ctx, "alice@example.org", "alice", "hunter2")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	_, fieldErrs, err = svc.Register(ctx, "other@example.org", "alice", "hunter2")
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "username", fieldErrs[0].Field)
	require.Equal(t, "username already taken", fieldErrs[0].Message)

	// The conflicting attempt must not have created a row.
	_, err = svc.Store.Users().GetUserByEmail(ctx, "other@example.org")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	_, fieldErrs, err := svc.Register(ctx, "alice@example.org", "alice", "hunter2")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	_, fieldErrs, err = svc.Register(ctx, "alice@example.org", "bobby", "hunter2")
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "email", fieldErrs[0].Field)
	require.Equal(t, "email already taken", fieldErrs[0].Message)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	registered, _, err := svc.Register(ctx, "alice@example.org", "alice", "hunter2")
	require.NoError(t, err)

	byUsername, fieldErrs, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, registered.ID, byUsername.ID)

	byEmail, fieldErrs, err := svc.Login(ctx, "alice@example.org", "hunter2")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, registered.ID, byEmail.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	_, _, err := svc.Register(ctx, "alice@example.org", "alice", "hunter2")
	require.NoError(t, err)

	_, fieldErrs, err := svc.Login(ctx, "alice", "wrong-password")
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "password", fieldErrs[0].Field)
	require.Equal(t, "incorrect password", fieldErrs[0].Message)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	_, fieldErrs, err := svc.Login(ctx, "nobody", "hunter2")
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "usernameOrEmail", fieldErrs[0].Field)
	require.Equal(t, "that username or email doesn't exist", fieldErrs[0].Message)
}

func TestLoginShortIdentifier(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t)}

	_, fieldErrs, err := svc.Login(ctx, "ab", "hunter2")
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "usernameOrEmail", fieldErrs[0].Field)
	require.Equal(t, "length must be greater than 2", fieldErrs[0].Message)
}
