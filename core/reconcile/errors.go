package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when a remote service has no base URL or
	// credential configured. Clients fail fast instead of issuing a request.
	ErrNotConfigured = errors.New("remote service not configured")

	// ErrUnknownKind is returned when a sync is requested for a kind no
	// adapter has been registered for.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// RequestError represents a non-2xx response from a remote REST endpoint.
type RequestError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the server-supplied error body, if any.
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// RPCError represents an error object in a JSON-RPC response envelope.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *RPCError) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
}

// DecodeError indicates a response body could not be deserialized. A decode
// failure on any page fails the whole fetch for that kind.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "failed to decode response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// FetchError classifies a failure to retrieve the remote collection for a kind.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for kind %q: %v", e.Kind, e.Err)
}
func (e *FetchError) Unwrap() error { return e.Err }

// RelationError classifies a relationship-resolution failure. It carries the
// offending record's kind and id; the pass for that kind is aborted.
type RelationError struct {
	Kind Kind
	ID   int64
	Err  error
}

func (e *RelationError) Error() string {
	return fmt.Sprintf("relationship resolution failed for %s %d: %v", e.Kind, e.ID, e.Err)
}
func (e *RelationError) Unwrap() error { return e.Err }

// SaveError classifies a local store failure during a pass. The surrounding
// transaction rolls back, so no partial diff survives.
type SaveError struct {
	Kind Kind
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed for kind %q: %v", e.Kind, e.Err)
}
func (e *SaveError) Unwrap() error { return e.Err }
