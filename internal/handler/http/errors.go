package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// Authorization header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")

	// ErrInvalidAuthorizationHeader means the Authorization header was not
	// a `Bearer <token>` pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")

	// ErrEmptyToken means the bearer token part of the header was empty.
	ErrEmptyToken = errors.New("token is empty")
)
