package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Anything
// else coming out of a service is treated as an internal failure.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrNotFound           = errors.New("not found")
)
