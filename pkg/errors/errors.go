package errors

import "fmt"

// ErrNotFound indicates a requested entity does not exist
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFound creates a not-found error for the given entity and identifier
func NewNotFound(entity, id string) *ErrNotFound {
	return &ErrNotFound{Entity: entity, ID: id}
}

// IsNotFound reports whether err is an ErrNotFound
func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
