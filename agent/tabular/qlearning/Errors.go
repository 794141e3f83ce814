package qlearning

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotInitialized is returned when the environment cannot report
	// its state and action counts
	ErrNotInitialized = errors.New("environment not initialized")

	// ErrInvalidHyperparameter is returned when a hyperparameter is out
	// of range
	ErrInvalidHyperparameter = errors.New("invalid hyperparameter")

	// ErrNotTrained is returned when no table exists for a goal
	ErrNotTrained = errors.New("goal not trained")
)

// ActionError is returned when the environment fails while training.
// The training run is aborted.
type ActionError struct {
	State  int
	Action int
	Err    error
}

func (e *ActionError) Error() string {
	if e.State < 0 {
		return fmt.Sprintf("environment failed: %v", e.Err)
	}
	if e.Action < 0 {
		return fmt.Sprintf("environment failed in state %d: %v", e.State,
			e.Err)
	}
	return fmt.Sprintf("environment failed taking action %d in state %d: %v",
		e.Action, e.State, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// initError is returned by New when the environment cannot report its
// dimensions. It matches ErrNotInitialized and unwraps to the cause.
type initError struct {
	err error
}

func (e *initError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNotInitialized, e.err)
}

func (e *initError) Is(target error) bool {
	return target == ErrNotInitialized
}

func (e *initError) Unwrap() error {
	return e.err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
