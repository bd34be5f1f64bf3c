package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeEnd(t *testing.T) {
	start := time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		hours float64
		want  time.Time
	}{
		{"half hour", 0.5, start.Add(30 * time.Minute)},
		{"one hour", 1.0, start.Add(time.Hour)},
		{"hour and a half", 1.5, start.Add(90 * time.Minute)},
		{"two hours", 2.0, start.Add(2 * time.Hour)},
		{"two and a half", 2.5, start.Add(150 * time.Minute)},
		{"three hours", 3.0, start.Add(3 * time.Hour)},
		{"three and a half", 3.5, start.Add(210 * time.Minute)},
		{"four hours", 4.0, start.Add(4 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEnd(start, tt.hours)
			assert.True(t, got.Equal(tt.want), "end = %v, want %v", got, tt.want)
			// end == start + duration*3600s с точностью до секунды
			assert.Equal(t, tt.hours*3600, got.Sub(start).Seconds())
		})
	}
}

func TestValidDuration(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  bool
	}{
		{"minimum", 0.5, true},
		{"maximum", 4.0, true},
		{"mid range", 2.5, true},
		{"below minimum", 0.25, false},
		{"zero", 0, false},
		{"negative", -1.0, false},
		{"above maximum", 4.5, false},
		{"not a half-hour step", 1.3, false},
		{"quarter step", 1.75, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDuration(tt.hours))
		})
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPast(now.Add(-time.Second), now))
	assert.False(t, IsPast(now, now), "start == now is not in the past")
	assert.False(t, IsPast(now.Add(time.Second), now))
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical intervals", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap from the right", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"partial overlap from the left", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"fully contained", at(10, 15), at(10, 45), at(10, 0), at(11, 0), true},
		{"fully containing", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"touching: first ends when second starts", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching: first starts when second ends", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint before", at(7, 0), at(8, 0), at(10, 0), at(11, 0), false},
		{"disjoint after", at(12, 0), at(13, 0), at(10, 0), at(11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Предикат симметричен
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, BookingStatus("no_show").Valid())
	assert.False(t, BookingStatus("").Valid())
}
