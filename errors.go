package vendas

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid sale")
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage failure")
)

// ValidationError lists every problem found in a SaleInput.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StorageError reports a failed read or write of the persistence provider.
type StorageError struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: could not %s %q: %v", ErrStorage, e.Op, e.Key, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.Err }
