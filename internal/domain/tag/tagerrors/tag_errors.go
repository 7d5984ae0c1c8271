package tagerrors

import "errors"

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrNameRequired = errors.New("name is required")
)
