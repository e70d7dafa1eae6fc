package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("record is referenced by other records")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// NotFoundError names the entity kind that did not resolve. It matches ErrNotFound.
type NotFoundError struct {
	Kind string
}

func NotFound(kind string) error {
	return &NotFoundError{Kind: kind}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
