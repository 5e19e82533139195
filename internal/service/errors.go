package service

import "errors"

// Sentinel errors services wrap so controllers can pick the right status
// code without string matching.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrForbidden          = errors.New("not authorized to perform this action")
	ErrValidation         = errors.New("validation failed")
)
