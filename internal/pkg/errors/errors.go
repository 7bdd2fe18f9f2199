package errors

import (
	"errors"
	"net/http"
)

// Resp is an error that carries the HTTP class it should surface as.
// The message is returned verbatim to the caller.
type Resp struct {
	Code    int
	Message string
}

func (e *Resp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &Resp{Code: http.StatusBadRequest, Message: message}
}

func NotFound(message string) error {
	return &Resp{Code: http.StatusNotFound, Message: message}
}

func Forbidden(message string) error {
	return &Resp{Code: http.StatusForbidden, Message: message}
}

func UnauthorizedError(message string) error {
	return &Resp{Code: http.StatusUnauthorized, Message: message}
}

func InternalServerError(message string) error {
	return &Resp{Code: http.StatusInternalServerError, Message: message}
}

// HTTPCode extracts the HTTP class of err, defaulting to 500.
func HTTPCode(err error) int {
	var resp *Resp
	if errors.As(err, &resp) {
		return resp.Code
	}
	return http.StatusInternalServerError
}
