package usererrors

import (
	"errors"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameRequired = errors.New("name is required")
	ErrUserHasTasks = errors.New("delete the user's tasks first")
)
