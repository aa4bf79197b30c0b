// Package repository holds the in-memory stores backing authentication:
// user accounts and refresh tokens. The booking state itself lives in the
// booking package; these stores only carry who may call the API. Sentinel
// errors let handlers distinguish failure cases without string matching.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// taken. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the given email or ID.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenInvalid is returned when a refresh token hash is unknown, expired
// or revoked. Handlers translate this into an HTTP 401 response.
var ErrTokenInvalid = errors.New("invalid refresh token")
