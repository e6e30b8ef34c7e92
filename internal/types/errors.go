package types

import "errors"

// Sentinel errors for trackrules operations.
var (
	// ErrDataElementNotFound indicates a referenced data element does not
	// exist in the store. This is a dangling reference, not an authoring
	// mistake: it surfaces to the caller instead of being skipped.
	ErrDataElementNotFound = errors.New("data element not found")

	// ErrMissingReference indicates a required association (data element,
	// attribute, stage or section) is absent from a rule definition.
	ErrMissingReference = errors.New("required reference is missing")

	// ErrUnknownSourceType indicates a variable source kind outside the
	// recognized enumeration.
	ErrUnknownSourceType = errors.New("unknown variable source type")

	// ErrUnknownEnrollmentStatus indicates an enrollment status with no
	// engine-side counterpart.
	ErrUnknownEnrollmentStatus = errors.New("unknown enrollment status")

	// ErrUnknownEventStatus indicates an event status with no engine-side
	// counterpart.
	ErrUnknownEventStatus = errors.New("unknown event status")
)
