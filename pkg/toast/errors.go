package toast

import "errors"

var (
	// ErrInvalidConfig is returned by New when construction options are
	// out of range (MaxVisible < 1, negative durations, unknown default
	// position). Degenerate values fail fast instead of producing
	// silently broken managers.
	ErrInvalidConfig = errors.New("toast: invalid configuration")
)
