package errors

import (
	"fmt"
	"strings"
)

// ValidationError rejects a submission before any side effect, naming the
// offending fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// StorageError wraps a failed read or write against the active store backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
