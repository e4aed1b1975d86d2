package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrMissingField   = errors.New("Missing required fields")
	ErrImageCount     = errors.New("Products require at least 2 and at most 5 images")
	ErrInvalidID      = errors.New("Invalid ID")
	ErrInvalidStatus  = errors.New("Invalid status")
	ErrNotFound       = errors.New("Resource not found")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrMissingField:   ErrStatusClient,
	ErrImageCount:     ErrStatusClient,
	ErrInvalidID:      ErrStatusClient,
	ErrInvalidStatus:  ErrStatusClient,
	ErrNotFound:       ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
