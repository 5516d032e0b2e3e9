package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailAlreadyExists is returned when a registration reuses an email.
	ErrEmailAlreadyExists = errors.New("Email already exists")
	// ErrPhoneAlreadyExists is returned when a registration reuses a phone.
	ErrPhoneAlreadyExists = errors.New("Phone already exists")
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("User not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Message,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised is
// a store fault and is hidden behind a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, ErrEmailAlreadyExists.Error(), "EMAIL_ALREADY_EXISTS")
	case errors.Is(err, ErrPhoneAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, ErrPhoneAlreadyExists.Error(), "PHONE_ALREADY_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR")
	}
}
