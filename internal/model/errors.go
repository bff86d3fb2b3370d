package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrMalformedKey    = errors.New("malformed key")
	ErrMalformedFilter = errors.New("malformed filter")
)

// StoreErrorKind classifies a store failure.
type StoreErrorKind string

const (
	// StoreConnectivity means the store could not be reached or the connection broke.
	StoreConnectivity StoreErrorKind = "connectivity"
	// StoreRejected means the store refused the query or its input.
	StoreRejected StoreErrorKind = "rejected"
	// StoreTimeout means the query did not finish before its deadline.
	StoreTimeout StoreErrorKind = "timeout"
)

// StoreError is returned by query executors for any store-side failure.
type StoreError struct {
	Kind StoreErrorKind
	Err  error
}

// NewStoreError wraps err with the given kind.
func NewStoreError(kind StoreErrorKind, err error) *StoreError {
	return &StoreError{Kind: kind, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failure: %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
