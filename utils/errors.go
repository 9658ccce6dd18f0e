package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Service error codes.
const (
	CodeNotFound = "notFound"
	CodeConflict = "conflict"
	CodeInvalid  = "invalidInput"
)

// ServiceError carries a machine-readable code so the HTTP layer can pick a
// status without string matching.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeInvalid, Message: msg}
}

// HTTPStatus maps a service error to its HTTP status. Anything that is not a
// ServiceError is a store failure.
func HTTPStatus(err error) int {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		case CodeInvalid:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
