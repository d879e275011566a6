package service

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that require a logged-in
	// user when no session identity is bound to the request.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotPostOwner is returned when a user attempts to mutate a post they
	// do not own.
	ErrNotPostOwner = errors.New("not post owner")
)
