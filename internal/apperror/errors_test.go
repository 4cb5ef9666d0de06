package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "qty", Value: "0", Reason: "must be positive"}
	assert.Contains(t, err.Error(), "qty")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestDuplicateError(t *testing.T) {
	err := &DuplicateError{Name: "Kopi Hitam"}
	assert.Contains(t, err.Error(), "Kopi Hitam")
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Kind: "transaction", Key: "42"}
	assert.Contains(t, err.Error(), "transaction")
	assert.Contains(t, err.Error(), "42")
}

func TestStorageDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &StorageDecodeError{Key: "transactions.json", Err: cause}

	assert.Contains(t, err.Error(), "transactions.json")
	assert.ErrorIs(t, err, cause)
}
