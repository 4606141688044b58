package controllers

import (
	"errors"

	"SocialMedia/pkg/services"
)

// failureMessage turns a service error into the client-facing msg.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidAccount):
		return "Username is required and password must be at least 4 characters"
	case errors.Is(err, services.ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, services.ErrInvalidMessage):
		return "Message text must be between 1 and 255 characters"
	case errors.Is(err, services.ErrAuthorNotFound):
		return "posted_by does not match an existing account"
	case errors.Is(err, services.ErrMessageNotFound):
		return "Message not found"
	case errors.Is(err, services.ErrAccountCreateFailed):
		return "failed to create account"
	case errors.Is(err, services.ErrMessageCreateFailed):
		return "failed to create message"
	default:
		return "failed to update message"
	}
}
