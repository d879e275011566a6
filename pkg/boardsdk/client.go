package boardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a client for the board API. Authentication is cookie-based, so
// the client carries a cookie jar: a successful Register or Login leaves
// the session cookie in the jar and subsequent calls are authenticated.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a board API client with its own cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// APIError is returned for responses outside the field-error channel, such
// as the authorization gate (401) or infrastructure failures (5xx).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("board api: %d %s", e.StatusCode, e.Message)
}

// Register creates an account. Validation and conflict failures arrive in
// the response's Errors list, not as a Go error.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	var resp UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, &resp)
	return resp, err
}

// Login authenticates by username-or-email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (UserResponse, error) {
	var resp UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, &resp)
	return resp, err
}

// Logout destroys the current session.
func (c *Client) Logout(ctx context.Context) (SuccessResponse, error) {
	var resp SuccessResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, &resp)
	return resp, err
}

// Me returns the logged-in user, or a nil User when nobody is.
func (c *Client) Me(ctx context.Context) (UserResponse, error) {
	var resp UserResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/me", nil, &resp)
	return resp, err
}

// ForgotPassword requests a password-reset email. Always succeeds from the
// caller's perspective, registered address or not.
func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (SuccessResponse, error) {
	var resp SuccessResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/forgot-password", req, &resp)
	return resp, err
}

// ChangePassword exchanges an emailed reset token for a new password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (UserResponse, error) {
	var resp UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/change-password", req, &resp)
	return resp, err
}

// Posts fetches one page of the post listing. cursor is the createdAt of
// the last seen post in milliseconds since epoch, or empty for the first
// page.
func (c *Client) Posts(ctx context.Context, limit int, cursor string) (PostsResponse, error) {
	path := fmt.Sprintf("/v1/posts?limit=%d", limit)
	if cursor != "" {
		path += "&cursor=" + cursor
	}

	var resp PostsResponse
	err := c.doJSON(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

// Post fetches a single post by id; Post is nil when absent.
func (c *Client) Post(ctx context.Context, id int64) (PostResponse, error) {
	var resp PostResponse
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/posts/%d", id), nil, &resp)
	return resp, err
}

// CreatePost creates a post owned by the logged-in user.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (PostResponse, error) {
	var resp PostResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/posts", req, &resp)
	return resp, err
}

// UpdatePost changes the title of a post the logged-in user owns.
func (c *Client) UpdatePost(ctx context.Context, id int64, req UpdatePostRequest) (PostResponse, error) {
	var resp PostResponse
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/v1/posts/%d", id), req, &resp)
	return resp, err
}

// DeletePost removes a post the logged-in user owns.
func (c *Client) DeletePost(ctx context.Context, id int64) (SuccessResponse, error) {
	var resp SuccessResponse
	err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/v1/posts/%d", id), nil, &resp)
	return resp, err
}

// doJSON sends body (when non-nil) as JSON and decodes a 200 response into
// target. Any other status is surfaced as an *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
