package boardsdk

import "time"

// FieldError is a validation failure attributed to one named input field.
// Mutations carry these in the response body with HTTP 200; callers must
// inspect Errors on every mutation result.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// User is the client-facing projection of an account. The password hash is
// never serialized.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Post is the client-facing projection of a post. TextSnippet carries the
// first few words for list views.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	TextSnippet string    `json:"textSnippet"`
	CreatorID   int64     `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserResponse is the result shape of register, login, change-password and
// me. Exactly one of Errors and User is populated; me returns User null
// with no Errors when nobody is logged in.
type UserResponse struct {
	Errors []FieldError `json:"errors,omitempty"`
	User   *User        `json:"user"`
}

// PostResponse wraps a single post. Post is null when the id does not
// resolve (not-found-is-null convention).
type PostResponse struct {
	Errors []FieldError `json:"errors,omitempty"`
	Post   *Post        `json:"post"`
}

// PostsResponse is one page of the post listing. HasMore reports whether
// posts older than the returned page exist; the cursor for the next page is
// the createdAt of the last returned post in milliseconds since epoch.
type PostsResponse struct {
	Posts   []Post `json:"posts"`
	HasMore bool   `json:"hasMore"`
}

// SuccessResponse is the result shape of logout, forgot-password and post
// deletion.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the generic failure shape used outside the field-error
// channel: the authorization gate and infrastructure failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /v1/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest is the body of POST /v1/auth/change-password.
type ChangePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// CreatePostRequest is the body of POST /v1/posts.
type CreatePostRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// UpdatePostRequest is the body of PATCH /v1/posts/{id}.
type UpdatePostRequest struct {
	Title string `json:"title"`
}

// HealthChecks reports the status of critical dependencies in readiness
// probes.
type HealthChecks struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
