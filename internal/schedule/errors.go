package schedule

import "errors"

var (
	// ErrNilPolicy is returned when a computation is invoked without a policy
	ErrNilPolicy = errors.New("schedule: policy is required")

	// ErrUnknownGranularity is returned for a granularity outside day/week/month
	ErrUnknownGranularity = errors.New("schedule: unknown granularity")
)
