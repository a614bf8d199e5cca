package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

func BadRequest(message string) *APIError {
	return New("BAD_REQUEST", message, http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func NotFound(message string) *APIError {
	return New("NOT_FOUND", message, http.StatusNotFound)
}

func Conflict(message string) *APIError {
	return New("ALREADY_EXISTS", message, http.StatusConflict)
}

func Internal(message string) *APIError {
	return New("INTERNAL_ERROR", message, http.StatusInternalServerError)
}
