package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// NetworkError reports a request that never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RequestError reports a non-2xx response from the gateway. Error bodies are
// never parsed; only the status line is kept.
type RequestError struct {
	Op         string
	StatusCode int
	StatusText string
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(op string, resp *http.Response, message string) *RequestError {
	return &RequestError{
		Op:         op,
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Message:    message,
	}
}

// statusText strips the numeric code from resp.Status ("404 Not Found" -> "Not Found").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
