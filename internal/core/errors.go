package core

import "errors"

var (
	// ErrValidation reports a process record missing a required field
	// or carrying an out-of-range one (empty id, negative arrival,
	// non-positive burst).
	ErrValidation = errors.New("invalid process record")

	// ErrDuplicateID reports an insertion with an id already present
	// in the registry.
	ErrDuplicateID = errors.New("duplicate process id")

	// ErrEmptyInput reports a simulation requested over zero processes.
	ErrEmptyInput = errors.New("no processes to schedule")

	// ErrIncompleteProcess reports a record reaching the engine without
	// the data needed to simulate it. The registry validates on add, so
	// the engine re-asserting this is a defensive check.
	ErrIncompleteProcess = errors.New("incomplete process record")

	// ErrInvalidQuantum reports a non-positive round robin quantum.
	ErrInvalidQuantum = errors.New("time quantum must be positive")

	// ErrUnsupportedAlgorithm reports a selector outside the known set.
	ErrUnsupportedAlgorithm = errors.New("unsupported scheduling algorithm")
)
