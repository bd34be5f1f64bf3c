package domain

import (
	"math"
	"time"
)

// Duration bounds for a single booking, in hours.
// Only half-hour increments inside the range are bookable.
const (
	MinDurationHours  = 0.5
	MaxDurationHours  = 4.0
	durationStepHours = 0.5
)

// ComputeEnd returns the end of a booking interval: start + hours.
// Exact for every valid duration: hours*3600 is integral for half-hour steps.
func ComputeEnd(start time.Time, hours float64) time.Time {
	return start.Add(time.Duration(hours*3600) * time.Second)
}

// ValidDuration returns true if hours is within [MinDurationHours, MaxDurationHours]
// and lands on a half-hour increment.
func ValidDuration(hours float64) bool {
	if hours < MinDurationHours || hours > MaxDurationHours {
		return false
	}
	steps := hours / durationStepHours
	return steps == math.Trunc(steps)
}

// IsPast returns true if start is strictly before now
func IsPast(start, now time.Time) bool {
	return start.Before(now)
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. Touching endpoints (e1 == s2) are not a conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
