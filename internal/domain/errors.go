package domain

import "fmt"

// Error kinds surfaced to the transport boundary. Controllers map these to
// HTTP statuses and a machine-readable "kind" in the response body.

// ValidationError reports malformed input, such as a score outside 1..5.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an absent course, class, teacher, or rating.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Resource, e.ID)
}

// ForbiddenError reports a caller acting on a resource they do not own.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// UnauthorizedError reports a missing or invalid token.
type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string {
	return e.Message
}

// ConflictError reports a race on the one-active-rating-per-user constraint.
// Callers may retry the operation.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}
