package db

import "errors"

// NotFoundError signals a reference entity the batch expected to exist.
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// DuplicateKeyError is returned on unique index violations.
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
