package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(d Date) *Date {
	return &d
}

// TestAveragePeriodDuration verifies inclusive day counting and the
// duration sanity window.
func TestAveragePeriodDuration(t *testing.T) {
	tests := []struct {
		name     string
		cycles   []Cycle
		expected int
		ok       bool
		desc     string
	}{
		{
			name: "Single closed cycle, inclusive counting",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1), EndDate: datePtr(NewDate(2024, 1, 5))},
			},
			expected: 5,
			ok:       true,
			desc:     "Jan 1 through Jan 5 is 5 days because the start day counts as day 1",
		},
		{
			name: "Same-day start and end",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1), EndDate: datePtr(NewDate(2024, 1, 1))},
			},
			expected: 1,
			ok:       true,
			desc:     "A one-day period is valid and averages to 1",
		},
		{
			name: "Open cycles contribute nothing",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
				{ID: "b", StartDate: NewDate(2024, 2, 1), EndDate: datePtr(NewDate(2024, 2, 4))},
			},
			expected: 4,
			ok:       true,
			desc:     "Only the closed cycle is sampled",
		},
		{
			name: "Implausibly long duration is excluded, not clamped",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1), EndDate: datePtr(NewDate(2024, 1, 20))},
				{ID: "b", StartDate: NewDate(2024, 2, 1), EndDate: datePtr(NewDate(2024, 2, 6))},
			},
			expected: 6,
			ok:       true,
			desc:     "A 20-day sample (>= 15) is dropped entirely",
		},
		{
			name: "End before start is excluded",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 10), EndDate: datePtr(NewDate(2024, 1, 1))},
			},
			ok:   false,
			desc: "Negative durations fall below the window; no sample qualifies",
		},
		{
			name: "Boundary: 14 days in, 15 days out",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1), EndDate: datePtr(NewDate(2024, 1, 14))},
				{ID: "b", StartDate: NewDate(2024, 2, 1), EndDate: datePtr(NewDate(2024, 2, 15))},
			},
			expected: 14,
			ok:       true,
			desc:     "The window is [1, 15): an exact 15-day duration is rejected",
		},
		{
			name: "Rounding to nearest",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1), EndDate: datePtr(NewDate(2024, 1, 4))},
				{ID: "b", StartDate: NewDate(2024, 2, 1), EndDate: datePtr(NewDate(2024, 2, 5))},
			},
			expected: 5,
			ok:       true,
			desc:     "(4 + 5) / 2 = 4.5 rounds to 5",
		},
		{
			name: "No cycles",
			ok:   false,
			desc: "Empty history yields no estimate; caller keeps the stored value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, ok := AveragePeriodDuration(tt.cycles)
			assert.Equal(t, tt.ok, ok, tt.desc)
			if tt.ok {
				assert.Equal(t, tt.expected, avg, tt.desc)
			}
		})
	}
}

// TestAverageCycleLength verifies the adjacent-pair gap computation and
// its sanity window.
func TestAverageCycleLength(t *testing.T) {
	tests := []struct {
		name     string
		cycles   []Cycle
		expected int
		ok       bool
		desc     string
	}{
		{
			name: "Textbook 28-day gap",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
				{ID: "b", StartDate: NewDate(2024, 1, 29)},
			},
			expected: 28,
			ok:       true,
			desc:     "Jan 1 to Jan 29 is a 28-day gap, within (15, 60)",
		},
		{
			name: "Unsorted input is handled",
			cycles: []Cycle{
				{ID: "b", StartDate: NewDate(2024, 1, 29)},
				{ID: "c", StartDate: NewDate(2024, 2, 27)},
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
			},
			expected: 29,
			ok:       true,
			desc:     "Gaps are 28 and 29; mean 28.5 rounds to 29",
		},
		{
			name: "Short gap excluded",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
				{ID: "b", StartDate: NewDate(2024, 1, 10)},
				{ID: "c", StartDate: NewDate(2024, 2, 7)},
			},
			expected: 28,
			ok:       true,
			desc:     "The 9-day gap is discarded; the 28-day gap remains",
		},
		{
			name: "Boundary gaps rejected on both sides",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
				{ID: "b", StartDate: NewDate(2024, 1, 16)},
				{ID: "c", StartDate: NewDate(2024, 3, 16)},
			},
			ok:   false,
			desc: "A 15-day gap and a 60-day gap are both outside (15, 60)",
		},
		{
			name: "Single cycle has no pair",
			cycles: []Cycle{
				{ID: "a", StartDate: NewDate(2024, 1, 1)},
			},
			ok:   false,
			desc: "One cycle cannot produce a gap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, ok := AverageCycleLength(tt.cycles)
			assert.Equal(t, tt.ok, ok, tt.desc)
			if tt.ok {
				assert.Equal(t, tt.expected, avg, tt.desc)
			}
		})
	}
}

// TestForecast replays the reference scenario: 28-day average, last start
// Jan 1, today Jan 20 -> due Jan 29, 9 days out.
func TestForecast(t *testing.T) {
	profile := Profile{Name: "Linh", AverageCycleLength: 28, AveragePeriodDuration: 5}
	cycles := []Cycle{
		{ID: "old", StartDate: NewDate(2023, 12, 4)},
		{ID: "new", StartDate: NewDate(2024, 1, 1)},
	}
	now := time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC)

	next, daysUntil, ok := Forecast(profile, cycles, now)

	assert.True(t, ok)
	assert.Equal(t, NewDate(2024, 1, 29), next)
	assert.Equal(t, 9, daysUntil)
}

func TestForecast_PastDue(t *testing.T) {
	profile := NewProfile("Linh")
	cycles := []Cycle{{ID: "a", StartDate: NewDate(2024, 1, 1)}}

	// Feb 5 is past the Jan 29 forecast: daysUntil goes negative and the
	// caller clamps for display.
	now := time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC)
	_, daysUntil, ok := Forecast(profile, cycles, now)

	assert.True(t, ok)
	assert.Equal(t, -7, daysUntil)
}

func TestForecast_NoCycles(t *testing.T) {
	_, _, ok := Forecast(NewProfile("Linh"), nil, time.Now())
	assert.False(t, ok)
}

// TestOnPeriod verifies the hard 10-day active window.
func TestOnPeriod(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		c        Cycle
		expected bool
		desc     string
	}{
		{
			name:     "Open cycle on day 10",
			c:        Cycle{ID: "a", StartDate: NewDate(2024, 1, 1)},
			expected: true,
			desc:     "Day 10 is the last day of the active window",
		},
		{
			name:     "Open cycle on day 11",
			c:        Cycle{ID: "a", StartDate: NewDate(2023, 12, 31)},
			expected: false,
			desc:     "Past the window an unclosed cycle is treated as historical",
		},
		{
			name:     "Closed cycle is never active",
			c:        Cycle{ID: "a", StartDate: NewDate(2024, 1, 8), EndDate: datePtr(NewDate(2024, 1, 9))},
			expected: false,
			desc:     "An end date closes the period regardless of recency",
		},
		{
			name:     "Future start is not active yet",
			c:        Cycle{ID: "a", StartDate: NewDate(2024, 1, 15)},
			expected: false,
			desc:     "Day of cycle would be negative; the window starts at day 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OnPeriod(tt.c, now), tt.desc)
		})
	}
}

func TestDayOfCycle(t *testing.T) {
	c := Cycle{ID: "a", StartDate: NewDate(2024, 1, 1)}

	assert.Equal(t, 1, DayOfCycle(c, time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)), "start date is day 1")
	assert.Equal(t, 20, DayOfCycle(c, time.Date(2024, 1, 20, 0, 1, 0, 0, time.UTC)))
}

func TestSorted(t *testing.T) {
	cycles := []Cycle{
		{ID: "mid", StartDate: NewDate(2024, 2, 1)},
		{ID: "old", StartDate: NewDate(2024, 1, 1)},
		{ID: "new", StartDate: NewDate(2024, 3, 1)},
	}

	ordered := Sorted(cycles)

	assert.Equal(t, []string{"new", "mid", "old"}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
	assert.Equal(t, "mid", cycles[0].ID, "input slice must not be mutated")
}
