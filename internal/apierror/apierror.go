// Package apierror defines the error envelope returned by every failing
// endpoint. Errors are plain immutable values passed through the normal
// error channel; nothing here is shared between requests.
package apierror

import (
	"fmt"
	"net/http"
)

// Stable machine-readable codes preserved verbatim in responses.
const (
	CodeInvalidCredentials = "USR_01"
	CodeFieldInvalid       = "USR_02"
	CodeEmailExists        = "USR_04"
	CodeEmailNotFound      = "USR_05"
	CodeAuthMissing        = "AUT_01"
	CodeAuthInvalid        = "AUT_03"
	CodeOrderAmount        = "ORD_01"
	CodeOrderNotFound      = "ORD_02"
	CodeCartItemNotFound   = "CRT_01"
)

// Error carries the status/code/message/field triple for one failed
// request.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s (%s)", e.Status, e.Code, e.Message, e.Field)
}

func New(status int, code, message, field string) *Error {
	return &Error{Status: status, Code: code, Message: message, Field: field}
}

func BadRequest(code, message, field string) *Error {
	return New(http.StatusBadRequest, code, message, field)
}

func Unauthorized(code, message, field string) *Error {
	return New(http.StatusUnauthorized, code, message, field)
}

func NotFound(code, message, field string) *Error {
	return New(http.StatusNotFound, code, message, field)
}

func Conflict(code, message, field string) *Error {
	return New(http.StatusConflict, code, message, field)
}

// Internal wraps an unexpected failure. The underlying error is not
// leaked to clients.
func Internal() *Error {
	return New(http.StatusInternalServerError, "", "internal server error", "")
}
