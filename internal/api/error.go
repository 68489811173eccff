package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a non-2xx server response. The state-machine layer treats it the
// same as a transport failure; status and body exist for the log sink.
type Error struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		s += ": " + e.Body
	}
	return s
}

const maxErrBody = 512

func newError(method, path string, resp *http.Response) *Error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	return &Error{
		Method: method,
		Path:   path,
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(b)),
	}
}
