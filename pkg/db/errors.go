package db

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when a query method is invoked without a live
// store handle. It is fatal to the calling analysis; nothing retries it.
var ErrNotConnected = errors.New("db: no live clickhouse connection")

// QueryError wraps a failed query with the operation that issued it.
// It propagates unchanged to the caller; empty result sets are never a
// QueryError.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
