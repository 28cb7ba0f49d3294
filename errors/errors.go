package errors

import "fmt"

var (
	ErrMissingFields      = fmt.Errorf("all fields are required")
	ErrEmailInUse         = fmt.Errorf("email already in use")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrMessageNotFound    = fmt.Errorf("message not found")
	ErrEmptyContent       = fmt.Errorf("message content is empty")
	ErrSessionNotFound    = fmt.Errorf("session not found")
)
