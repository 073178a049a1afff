// Package response defines the success/error envelope every endpoint
// answers with.  The envelope is a discriminated pair: either a payload
// or an error message, never both.  Construction goes through the OK and
// Err factories only, so a response cannot end up half-filled.
package response

// Type discriminates the two envelope variants.
type Type string

const (
	TypeOK    Type = "ok"
	TypeError Type = "error"
)

// Response wraps either a success payload or an error message.  Callers
// must inspect Type before reading Data; Data is meaningless on an error
// response.  On the wire a success pairs with a 2xx status and an error
// with a 4xx status.
type Response[T any] struct {
	Type  Type   `json:"type"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// OK builds a success envelope carrying data.
func OK[T any](data T) Response[T] {
	return Response[T]{Type: TypeOK, Data: data}
}

// Empty builds a success envelope with no payload.
func Empty() Response[struct{}] {
	return Response[struct{}]{Type: TypeOK}
}

// Err builds an error envelope carrying a human-readable message.
func Err[T any](msg string) Response[T] {
	return Response[T]{Type: TypeError, Error: msg}
}
