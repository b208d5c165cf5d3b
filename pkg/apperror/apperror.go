package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation is a BadRequest carrying field-level messages
func Validation(message string, fields map[string]string) *AppError {
	e := BadRequest(message)
	e.Details = fields
	return e
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func NotImplemented(message string) *AppError {
	return New(http.StatusNotImplemented, message, nil)
}

// Storage wraps a backend read/write failure. The caller may retry manually;
// the core never retries on its own.
func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, "Storage error", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
