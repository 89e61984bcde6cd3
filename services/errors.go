// File: /services/errors.go
package services

import "errors"

// Service-level errors. Controllers map these to HTTP statuses with
// errors.Is; none of them are fatal to the process.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrAlreadyRequested   = errors.New("friendship already requested")
	ErrSelfFriend         = errors.New("cannot friend yourself")
	ErrInvalidState       = errors.New("friendship is not in a state that allows this transition")
	ErrNotAuthorized      = errors.New("not authorized to modify this friendship")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStatusNotFound     = errors.New("status not found")
)
