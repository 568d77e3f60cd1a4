package service

import "errors"

// Business-layer errors; controllers map these to HTTP status codes at
// the transport boundary.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// ValidationError marks client input rejected before any write happens.
// Message names the violated constraint and is safe to return verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
