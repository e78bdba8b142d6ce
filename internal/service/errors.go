package service

import "errors"

// Errors returned by the auth services.
var (
	ErrDuplicateName      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnauthorized            = errors.New("unauthorized")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// Errors returned by the record services.
var (
	ErrRecordNotFound    = errors.New("event not found")
	ErrMissingSearchTerm = errors.New("search term is required")
)

// ErrOperationFailed wraps every storage fault that has no more specific
// meaning. The wrapped cause is kept in the message.
var ErrOperationFailed = errors.New("operation failed")
