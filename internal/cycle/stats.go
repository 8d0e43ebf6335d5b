package cycle

import (
	"math"
	"sort"
	"time"

	"github.com/trangvu/lunacycle/internal/config"
)

// This file is the statistics engine: pure functions over the cycle
// collection, no storage access and no side effects. The persistence
// layer calls into it on every recalculation; the presentation layer
// calls it directly for display.

// Sort orders cycles by start date descending (newest first), the
// canonical persisted order. Ties keep their relative order so repeated
// sorts are stable.
func Sort(cycles []Cycle) {
	sort.SliceStable(cycles, func(i, j int) bool {
		return cycles[i].StartDate.After(cycles[j].StartDate.Time)
	})
}

// Sorted returns a newest-first copy, leaving the input untouched.
func Sorted(cycles []Cycle) []Cycle {
	out := make([]Cycle, len(cycles))
	copy(out, cycles)
	Sort(out)
	return out
}

// AveragePeriodDuration computes the mean inclusive duration of closed
// cycles, rounded to the nearest day. Durations outside the sanity
// window [MinPeriodDuration, MaxPeriodDuration) are discarded rather
// than clamped. ok is false when no cycle qualifies, in which case the
// caller keeps its previous estimate.
func AveragePeriodDuration(cycles []Cycle) (avg int, ok bool) {
	var sum, n int
	for _, c := range cycles {
		d, closed := c.Duration()
		if !closed {
			continue
		}
		if d < config.MinPeriodDuration || d >= config.MaxPeriodDuration {
			continue
		}
		sum += d
		n++
	}
	if n == 0 {
		return 0, false
	}
	return roundedMean(sum, n), true
}

// AverageCycleLength computes the mean gap in days between the start
// dates of adjacent cycles, rounded to the nearest day. Gaps outside the
// sanity window (MinCycleGap, MaxCycleGap) are discarded. ok is false
// when no adjacent pair qualifies.
func AverageCycleLength(cycles []Cycle) (avg int, ok bool) {
	ordered := Sorted(cycles)
	var sum, n int
	for i := 0; i+1 < len(ordered); i++ {
		gap := ordered[i+1].StartDate.DaysUntil(ordered[i].StartDate)
		if gap <= config.MinCycleGap || gap >= config.MaxCycleGap {
			continue
		}
		sum += gap
		n++
	}
	if n == 0 {
		return 0, false
	}
	return roundedMean(sum, n), true
}

// Forecast predicts the next period from the most recent cycle start and
// the profile's average cycle length. daysUntil is relative to now and
// may be negative when the forecast date has already passed; display
// code clamps it at zero. ok is false when no cycle exists.
func Forecast(p Profile, cycles []Cycle, now time.Time) (next Date, daysUntil int, ok bool) {
	latest, found := MostRecent(cycles)
	if !found {
		return Date{}, 0, false
	}
	length := p.AverageCycleLength
	if length <= 0 {
		length = config.DefaultCycleLength
	}
	next = latest.StartDate.AddDays(length)
	daysUntil = DateOf(now).DaysUntil(next)
	return next, daysUntil, true
}

// MostRecent returns the cycle with the latest start date.
func MostRecent(cycles []Cycle) (Cycle, bool) {
	if len(cycles) == 0 {
		return Cycle{}, false
	}
	latest := cycles[0]
	for _, c := range cycles[1:] {
		if c.StartDate.After(latest.StartDate.Time) {
			latest = c
		}
	}
	return latest, true
}

// DayOfCycle counts calendar days since the cycle started, with the
// start date itself as day 1.
func DayOfCycle(c Cycle, now time.Time) int {
	return c.StartDate.DaysUntil(DateOf(now)) + 1
}

// OnPeriod reports whether the cycle is currently active: not closed and
// within the hard MaxActivePeriodDays window. An unclosed cycle past the
// window is treated as historical, the user simply forgot to close it.
func OnPeriod(c Cycle, now time.Time) bool {
	if !c.Open() {
		return false
	}
	day := DayOfCycle(c, now)
	return day >= 1 && day <= config.MaxActivePeriodDays
}

func roundedMean(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
