// Package apperr defines the error taxonomy shared by all domain services.
// Handlers translate these errors into HTTP status codes; anything else is a 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotFoundError signals that a referenced entity identifier did not resolve.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

// NotFound builds a NotFoundError with a formatted message,
// e.g. "Hospital not found" or "Ward not found: <id>".
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// ValidationError signals that a write request violated a domain rule.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// RequiredError signals a mandatory argument was absent at the service
// boundary. Distinct from NotFoundError: absence of input, not of referent.
type RequiredError struct {
	msg string
}

func (e *RequiredError) Error() string { return e.msg }

func Required(format string, args ...interface{}) error {
	return &RequiredError{msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus maps a service error to the client-visible status code.
func HTTPStatus(err error) int {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var re *RequiredError
	if errors.As(err, &re) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToHTTPError wraps a service error into an echo HTTP error so the message
// reaches the client with the right status.
func ToHTTPError(err error) *echo.HTTPError {
	return echo.NewHTTPError(HTTPStatus(err), err.Error())
}
