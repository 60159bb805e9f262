package services

// Typed errors the handler layer maps to HTTP status codes.

type ValidationError struct{ Fields map[string]string }

func (e *ValidationError) Error() string { return "validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// UpstreamError wraps a failure of the external completion service.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }
