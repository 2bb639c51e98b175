package domain

import "errors"

var (
	// ErrStepIncomplete is returned when the current step's predicate blocks Continue
	ErrStepIncomplete = errors.New("wizard step is incomplete")

	// ErrCannotGoBack is returned by Back on the first step
	ErrCannotGoBack = errors.New("cannot go back from the first step")

	// ErrFlowFinished is returned when a finished draft is mutated
	ErrFlowFinished = errors.New("booking flow is already finished")

	// ErrInvalidStep is returned when an action is not allowed on the current step
	ErrInvalidStep = errors.New("action is not allowed on the current step")

	// ErrInvalidTime is returned for a time that is not "HH:MM"
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrInvalidTimezone is returned for an unknown IANA timezone name
	ErrInvalidTimezone = errors.New("invalid timezone")
)
