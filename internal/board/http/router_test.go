package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache/memory"
	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/internal/board/store/drivers/sqlite"
	"github.com/driftlab/driftboard/pkg/boardsdk"
	"github.com/driftlab/driftboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	to     []string
	bodies []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}

type testServer struct {
	*httptest.Server
	store  store.Store
	mailer *recordingMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	c := memory.New()
	t.Cleanup(func() { _ = c.Close() })

	sessions := session.NewManager(
		session.NewCacheStore(c, time.Hour, false, []byte("0123456789abcdef0123456789abcdef")),
		"qid",
	)

	mailer := &recordingMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter("test", st, c, sessions, "", logger)
	router.AuthService = &service.AuthService{Store: st}
	router.PasswordResetService = &service.PasswordResetService{
		Store:     st,
		Cache:     c,
		Mailer:    mailer,
		ServerURL: "http://localhost:3000",
	}
	router.PostService = &service.PostService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st, mailer: mailer}
}

func newTestClient(t *testing.T, srv *testServer) *boardsdk.Client {
	t.Helper()

	client, err := boardsdk.NewClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestRegisterThenMe(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	resp, err := client.Register(ctx, boardsdk.RegisterRequest{
		Email:    "alice@example.org",
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.User)
	require.Equal(t, "alice", resp.User.Username)

	// Registration logs the user in: me resolves through the new cookie.
	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, me.User)
	require.Equal(t, resp.User.ID, me.User.ID)
}

func TestRegisterValidationShortCircuits(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, newTestServer(t))

	// Both username and password are too short; only the username error is
	// reported.
	resp, err := client.Register(ctx, boardsdk.RegisterRequest{
		Email:    "a@b.c",
		Username: "ab",
		Password: "x",
	})
	require.NoError(t, err)
	require.Nil(t, resp.User)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "username", resp.Errors[0].Field)
}

func TestLoginWrongPasswordEstablishesNoSession(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	register := newTestClient(t, srv)
	_, err := register.Register(ctx, boardsdk.RegisterRequest{
		Email:    "alice@example.org",
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)

	client := newTestClient(t, srv)
	resp, err := client.Login(ctx, boardsdk.LoginRequest{
		UsernameOrEmail: "alice",
		Password:        "wrong-password",
	})
	require.NoError(t, err)
	require.Nil(t, resp.User)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "password", resp.Errors[0].Field)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Nil(t, me.User)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	_, err := client.Register(ctx, boardsdk.RegisterRequest{
		Email:    "alice@example.org",
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)

	out, err := client.Logout(ctx)
	require.NoError(t, err)
	require.True(t, out.Success)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Nil(t, me.User)
}

func TestMeWithoutSession(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, newTestServer(t))

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Nil(t, me.User)
	require.Empty(t, me.Errors)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, newTestServer(t))

	_, err := client.CreatePost(ctx, boardsdk.CreatePostRequest{Title: "t", Text: "x"})
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "not authenticated", apiErr.Message)
}

func TestPostCRUD(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	_, err := client.Register(ctx, boardsdk.RegisterRequest{
		Email:    "alice@example.org",
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)

	created, err := client.CreatePost(ctx, boardsdk.CreatePostRequest{
		Title: "first post",
		Text:  "hello world",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Post)
	require.Equal(t, "first post", created.Post.Title)

	got, err := client.Post(ctx, created.Post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Post)
	require.Equal(t, "hello world", got.Post.Text)

	updated, err := client.UpdatePost(ctx, created.Post.ID, boardsdk.UpdatePostRequest{Title: "renamed"})
	require.NoError(t, err)
	require.NotNil(t, updated.Post)
	require.Equal(t, "renamed", updated.Post.Title)

	deleted, err := client.DeletePost(ctx, created.Post.ID)
	require.NoError(t, err)
	require.True(t, deleted.Success)

	gone, err := client.Post(ctx, created.Post.ID)
	require.NoError(t, err)
	require.Nil(t, gone.Post)
}

func TestUpdateForeignPostForbidden(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	alice := newTestClient(t, srv)
	_, err := alice.Register(ctx, boardsdk.RegisterRequest{
		Email: "alice@example.org", Username: "alice", Password: "hunter2",
	})
	require.NoError(t, err)
	created, err := alice.CreatePost(ctx, boardsdk.CreatePostRequest{Title: "mine", Text: "x"})
	require.NoError(t, err)

	mallory := newTestClient(t, srv)
	_, err = mallory.Register(ctx, boardsdk.RegisterRequest{
		Email: "mallory@example.org", Username: "mallory", Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = mallory.UpdatePost(ctx, created.Post.ID, boardsdk.UpdatePostRequest{Title: "hijacked"})
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestUpdateAbsentPostIsNull(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	_, err := client.Register(ctx, boardsdk.RegisterRequest{
		Email: "alice@example.org", Username: "alice", Password: "hunter2",
	})
	require.NoError(t, err)

	resp, err := client.UpdatePost(ctx, 9999, boardsdk.UpdatePostRequest{Title: "title"})
	require.NoError(t, err)
	require.Nil(t, resp.Post)
}

func seedPosts(t *testing.T, st store.Store, n int) int64 {
	t.Helper()

	ctx := context.Background()
	userID, err := st.Users().CreateUser(ctx, domain.User{
		Username:     "seeder",
		Email:        "seeder@example.org",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := st.Posts().CreatePost(ctx, domain.Post{
			Title:     "post " + strconv.Itoa(i),
			Text:      "body",
			CreatorID: userID,
		})
		require.NoError(t, err)
		// Distinct creation instants so the ms-granularity cursor never
		// collides.
		time.Sleep(2 * time.Millisecond)
	}
	return userID
}

func TestListPostsPaginatesOverHTTP(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	seedPosts(t, srv.store, 51)

	page, err := client.Posts(ctx, 50, "")
	require.NoError(t, err)
	require.True(t, page.HasMore)
	require.Len(t, page.Posts, 50)
	for i := 1; i < len(page.Posts); i++ {
		require.False(t, page.Posts[i].CreatedAt.After(page.Posts[i-1].CreatedAt))
	}

	last := page.Posts[len(page.Posts)-1]
	cursor := strconv.FormatInt(last.CreatedAt.UnixMilli(), 10)
	rest, err := client.Posts(ctx, 50, cursor)
	require.NoError(t, err)
	require.False(t, rest.HasMore)
	require.Len(t, rest.Posts, 1)
}

func TestListPostsClampsLimit(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	seedPosts(t, srv.store, 55)

	page, err := client.Posts(ctx, 1000, "")
	require.NoError(t, err)
	require.True(t, page.HasMore)
	require.Len(t, page.Posts, 50)
}

func TestListPostsInvalidCursor(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/posts?cursor=not-a-number")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestForgotThenChangePasswordOverHTTP(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	register := newTestClient(t, srv)
	_, err := register.Register(ctx, boardsdk.RegisterRequest{
		Email: "alice@example.org", Username: "alice", Password: "old-password",
	})
	require.NoError(t, err)

	client := newTestClient(t, srv)
	forgot, err := client.ForgotPassword(ctx, boardsdk.ForgotPasswordRequest{Email: "alice@example.org"})
	require.NoError(t, err)
	require.True(t, forgot.Success)
	require.Equal(t, []string{"alice@example.org"}, srv.mailer.to)

	body := srv.mailer.bodies[0]
	_, rest, found := strings.Cut(body, "/change-password/")
	require.True(t, found)
	token, _, found := strings.Cut(rest, `"`)
	require.True(t, found)

	changed, err := client.ChangePassword(ctx, boardsdk.ChangePasswordRequest{
		Token:       token,
		NewPassword: "new-password",
	})
	require.NoError(t, err)
	require.Empty(t, changed.Errors)
	require.NotNil(t, changed.User)

	// The password change logs the user in.
	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, me.User)
	require.Equal(t, changed.User.ID, me.User.ID)

	// And the new credential works for a fresh login.
	fresh := newTestClient(t, srv)
	login, err := fresh.Login(ctx, boardsdk.LoginRequest{
		UsernameOrEmail: "alice@example.org",
		Password:        "new-password",
	})
	require.NoError(t, err)
	require.Empty(t, login.Errors)
	require.NotNil(t, login.User)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := newTestClient(t, srv)

	forgot, err := client.ForgotPassword(ctx, boardsdk.ForgotPasswordRequest{Email: "nobody@example.org"})
	require.NoError(t, err)
	require.True(t, forgot.Success)
	require.Empty(t, srv.mailer.to)
}

func TestLivezAndReadyz(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
