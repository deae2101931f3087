package store

import "errors"

var (
	ErrPermissionDenied  = errors.New("permission denied by remote store")
	ErrNotFound          = errors.New("document not found")
	ErrUnavailable       = errors.New("remote store unavailable")
	ErrValidationFailed  = errors.New("document validation failed")
	ErrUnknownCollection = errors.New("unknown collection")
)
