package entity

import "errors"

// Categorical failure classes of the content service. Every error returned by
// a usecase wraps exactly one of these; the HTTP controller maps them to
// status codes.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidArgument  = errors.New("invalid argument")
)
