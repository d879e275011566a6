// Package boardsdk contains the JSON request/response types of the board
// API together with a small HTTP client for them. Server handlers and
// external consumers share these types so the wire contract lives in one
// place.
package boardsdk
