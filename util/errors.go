package util

import (
	"errors"
	"net/http"
)

// Error classes surfaced by the service layer. Each maps to a single HTTP
// status; anything unclassified collapses to an internal error with a generic
// message, diagnostic detail stays in the server log.
type ErrorKind int

const (
	ValidationError ErrorKind = iota
	ConflictError
	NotFoundError
	AuthError
	InternalError
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ServiceError{Kind: ValidationError, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Kind: ConflictError, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Kind: NotFoundError, Message: msg}
}

func NewAuthError(msg string) error {
	return &ServiceError{Kind: AuthError, Message: msg}
}

func NewInternalError() error {
	return &ServiceError{Kind: InternalError, Message: SERVER_ERROR}
}

func KindOf(err error) ErrorKind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return InternalError
}

// The observed API contract keeps 400 for duplicate email, not 409.
func StatusOf(err error) int {
	switch KindOf(err) {
	case ValidationError, ConflictError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
