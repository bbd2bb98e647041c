package discovery

import "errors"

var (
	// ErrDataUnavailable is returned when there is no result set to operate on.
	ErrDataUnavailable = errors.New("no restaurants available")

	// ErrInsufficientCandidates is returned by Shuffle when every restaurant is already picked.
	ErrInsufficientCandidates = errors.New("no more restaurants available to shuffle")

	// ErrMissingReferencePosition is returned by a distance sort without a known position.
	ErrMissingReferencePosition = errors.New("reference position is unknown")

	ErrInvalidPickCount = errors.New("pick count must be at least 1")
	ErrSlotOutOfRange   = errors.New("pick slot out of range")
)
