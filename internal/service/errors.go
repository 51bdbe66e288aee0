package service

import (
	"fmt"

	"github.com/go-faster/errors"

	"miniattic-api/internal/repository"
)

// Errores de negocio exportados (los usa el controller)
var (
	ErrEmptyOrder         = errors.New("order has no products")
	ErrAuthMissing        = errors.New("missing credentials")
	ErrAuthExpired        = errors.New("token expired")
	ErrAuthInvalid        = errors.New("token invalid")
	ErrForbidden          = errors.New("forbidden")
	ErrNoAccess           = errors.New("access level not recognised")
	ErrInvalidCredentials = errors.New("invalid account or password")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrNotImage           = errors.New("file is not an image")
	ErrImageTooLarge      = errors.New("image too large")
	ErrUnknownCollection  = errors.New("unknown image collection")
)

// PersistenceError envuelve cualquier falla del store que no tenga otra clasificación.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// classify deja pasar los errores que el controller sabe mapear y envuelve el resto.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	return persistence(op, err)
}
