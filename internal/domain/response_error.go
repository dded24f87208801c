package domain

import "fmt"

// ResponseError describes a failed upstream HTTP call. It carries the
// response status and, when the body was JSON, the decoded payload so
// callers can surface a server-provided message (the {"error": ...}
// envelope used across the application).
type ResponseError struct {
	Status  int
	Body    string
	Payload map[string]any
}

func (e *ResponseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if m := e.Message(); m != "" {
		return fmt.Sprintf("upstream status %d: %s", e.Status, m)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// Message returns the payload's "error" field when it is a non-empty
// string, otherwise "". Both methods tolerate a nil receiver, the
// shape a typed nil in error position produces.
func (e *ResponseError) Message() string {
	if e == nil {
		return ""
	}
	v, ok := e.Payload["error"]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
