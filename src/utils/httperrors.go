package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

// HTTPError defines a custom error structure that includes an HTTP status code and message
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func Unauthorized(message string) error {
	return NewHTTPError(http.StatusUnauthorized, message)
}

func Forbidden(message string) error {
	return NewHTTPError(http.StatusForbidden, message)
}

func NotFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func UnprocessableEntity(message string) error {
	return NewHTTPError(http.StatusUnprocessableEntity, message)
}

func TooManyRequests(message string) error {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

func InternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}

func ServiceUnavailable(message string) error {
	return NewHTTPError(http.StatusServiceUnavailable, message)
}

// WriteError sends err as a JSON body. Anything that is not an HTTPError is
// reported as a generic 500 so internals never leak to the client.
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: GenericFailureMessage,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": httpErr.Message})
}

// WantsJSON reports whether the client asked for a JSON answer instead of
// an HTML page.
func WantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
