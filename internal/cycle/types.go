package cycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/trangvu/lunacycle/internal/config"
)

// Date is a calendar day with no time-of-day component.
// It marshals to and from the ISO date string used by the storage layer.
type Date struct {
	time.Time
}

// NewDate constructs a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
// The wall-clock date is taken in the instant's own location, so "today"
// matches what the user sees on their calendar, not UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses an ISO calendar-day string (YYYY-MM-DD).
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(config.DateFormatDay, value)
	if err != nil {
		return Date{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return Date{t}, nil
}

// String returns the ISO representation (YYYY-MM-DD).
func (d Date) String() string {
	return d.Format(config.DateFormatDay)
}

// AddDays returns the date n calendar days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
// Positive when other is later, negative when earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// MarshalJSON encodes the date as a bare ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO string, tolerating a full RFC3339 timestamp
// for records written by older clients.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New(config.ErrDateParse)
	}
	s = s[1 : len(s)-1]
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	*d = DateOf(t)
	return nil
}

// Cycle is one recorded menstrual period instance.
// A nil EndDate means the period has not been closed yet.
type Cycle struct {
	ID        string `json:"id"`
	StartDate Date   `json:"startDate"`
	EndDate   *Date  `json:"endDate,omitempty"`
	Note      string `json:"note,omitempty"`
}

// Open reports whether the cycle has no recorded end date.
func (c Cycle) Open() bool {
	return c.EndDate == nil
}

// Duration returns the inclusive day count of a closed cycle.
// The start day counts as day 1, so a same-day start and end is 1 day.
// ok is false for open cycles.
func (c Cycle) Duration() (days int, ok bool) {
	if c.EndDate == nil {
		return 0, false
	}
	return c.StartDate.DaysUntil(*c.EndDate) + 1, true
}

// Profile holds the per-user aggregate settings and computed averages.
type Profile struct {
	Name                  string `json:"name"`
	AverageCycleLength    int    `json:"averageCycleLength"`
	AveragePeriodDuration int    `json:"averagePeriodDuration"`
}

// NewProfile creates a profile with the textbook defaults. The averages
// converge on the user's own history as cycles are recorded.
func NewProfile(name string) Profile {
	return Profile{
		Name:                  name,
		AverageCycleLength:    config.DefaultCycleLength,
		AveragePeriodDuration: config.DefaultPeriodDuration,
	}
}
