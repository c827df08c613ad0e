package errors

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrInternalServer  = errors.New("internal server error")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomExists      = errors.New("room already exists")
	ErrMissingUsername = errors.New("username is required")
	ErrMissingMessage  = errors.New("text and author are required")
	ErrMissingTheme    = errors.New("theme is required")
)

type APIError struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(message string, code int) *APIError {
	return &APIError{
		Message: message,
		Code:    code,
	}
}

func HTTPStatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRoomExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrMissingUsername),
		errors.Is(err, ErrMissingMessage), errors.Is(err, ErrMissingTheme):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
