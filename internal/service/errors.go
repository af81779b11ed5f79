package service

import "errors"

// Domain errors returned to handlers.
var (
	ErrUserTaken        = errors.New("username or email already taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrEmptyPassword    = errors.New("password is empty")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
)
