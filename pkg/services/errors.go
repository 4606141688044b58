package services

import "errors"

var (
	ErrInvalidAccount      = errors.New("invalid account")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrAccountCreateFailed = errors.New("account could not be created")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrInvalidMessage      = errors.New("invalid message")
	ErrAuthorNotFound      = errors.New("posted_by does not reference an account")
	ErrMessageCreateFailed = errors.New("message could not be created")
	ErrMessageNotFound     = errors.New("message not found")
	ErrMessageUpdateFailed = errors.New("message could not be updated")
)
