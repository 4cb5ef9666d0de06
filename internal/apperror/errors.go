// Package apperror defines the error types raised by the ledger and its
// storage layer. Callers match them with errors.As to decide how a failure is
// surfaced to the user.
package apperror

import "fmt"

// ValidationError reports a rejected transaction or product input. The whole
// operation is refused; no partial write happens.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports an attempt to add a product name already in the
// catalog.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("product %q already exists", e.Name)
}

// NotFoundError reports an operation on a record that does not exist. Deletes
// treat it as a no-op; callers decide whether to show it.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// StorageDecodeError reports a persisted document that could not be decoded.
// The store logs it and falls back to an empty collection.
type StorageDecodeError struct {
	Key string
	Err error
}

func (e *StorageDecodeError) Error() string {
	return fmt.Sprintf("malformed data in %s: %v", e.Key, e.Err)
}

func (e *StorageDecodeError) Unwrap() error {
	return e.Err
}
