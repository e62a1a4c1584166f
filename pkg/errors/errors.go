package errors

import "fmt"

// HTTPError is a surfaced error carrying a stable machine-readable code,
// a user-facing message, and an HTTP status category. Internal detail never
// lives here; it is logged server-side before mapping.
type HTTPError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Code:       code,
		Message:    message,
	}
}
