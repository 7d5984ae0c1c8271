package taskerrors

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTitleAndUserRequired = errors.New("title and id_user are required")
	ErrUserNotFound         = errors.New("user not found")
)
