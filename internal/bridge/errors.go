package bridge

import "errors"

var (
	// ErrNotRegistered is returned when tuning the suggestion strategy of
	// a parser kind that has no mapping yet.
	ErrNotRegistered = errors.New("no mapping registered for parser kind")

	// ErrEmptyAggregate is returned when compiling an aggregate node with
	// zero sub-components.
	ErrEmptyAggregate = errors.New("aggregate argument has no components")

	// ErrBookkeepingUnavailable is returned when the native registry does
	// not expose its registration bookkeeping, so a subtree cannot be
	// removed without leaking a side-table entry.
	ErrBookkeepingUnavailable = errors.New("registry does not expose registration bookkeeping")
)
