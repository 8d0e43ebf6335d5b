package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trangvu/lunacycle/internal/cycle"
	"github.com/trangvu/lunacycle/internal/export"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func datePtr(d cycle.Date) *cycle.Date {
	return &d
}

func TestGenerate_PeriodsAndForecast(t *testing.T) {
	gen := &export.Generator{
		Clock:          MockClock{CurrentTime: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)},
		FormatPeriod:   func(name string) string { return "Kỳ kinh (" + name + ")" },
		FormatForecast: func(name string) string { return "Dự đoán kỳ kinh (" + name + ")" },
	}

	profile := cycle.Profile{Name: "Linh", AverageCycleLength: 28, AveragePeriodDuration: 5}
	cycles := []cycle.Cycle{
		{ID: "a", StartDate: cycle.NewDate(2024, 1, 1), EndDate: datePtr(cycle.NewDate(2024, 1, 5))},
		{ID: "b", StartDate: cycle.NewDate(2023, 12, 4), EndDate: datePtr(cycle.NewDate(2023, 12, 8))},
	}

	data, err := gen.Generate(profile, cycles)
	assert.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Kỳ kinh (Linh)")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240101")
	// Exclusive all-day DTEND: Jan 5 end spans through the 5th.
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20240106")
	// Forecast: Jan 1 + 28 days = Jan 29.
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240129")
	assert.Contains(t, ics, "SUMMARY:Dự đoán kỳ kinh (Linh)")

	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VEVENT"), "two periods plus one forecast")
}

func TestGenerate_OpenCycleHasNoEnd(t *testing.T) {
	gen := export.NewGenerator()
	gen.Clock = MockClock{CurrentTime: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)}

	profile := cycle.NewProfile("Linh")
	cycles := []cycle.Cycle{{ID: "a", StartDate: cycle.NewDate(2024, 1, 1)}}

	data, err := gen.Generate(profile, cycles)
	assert.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240101")
	assert.NotContains(t, ics, "DTEND", "an open cycle exports without an end")
}

func TestGenerate_Empty(t *testing.T) {
	gen := export.NewGenerator()

	data, err := gen.Generate(cycle.NewProfile("Linh"), nil)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR", "empty history still yields a valid feed")
	assert.NotContains(t, string(data), "BEGIN:VEVENT")
}

// TestGenerate_DeterministicUIDs ensures a re-export produces identical
// identifiers, so calendar clients update events instead of duplicating.
func TestGenerate_DeterministicUIDs(t *testing.T) {
	gen := export.NewGenerator()
	gen.Clock = MockClock{CurrentTime: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)}

	profile := cycle.NewProfile("Linh")
	cycles := []cycle.Cycle{{ID: "a", StartDate: cycle.NewDate(2024, 1, 1)}}

	first, err := gen.Generate(profile, cycles)
	assert.NoError(t, err)
	second, err := gen.Generate(profile, cycles)
	assert.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
