package cycle

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 3, 15)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var back Date
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

// TestDate_LegacyTimestamp ensures records written with a full RFC3339
// timestamp still decode to their calendar day.
func TestDate_LegacyTimestamp(t *testing.T) {
	var d Date
	assert.NoError(t, json.Unmarshal([]byte(`"2024-03-15T18:30:00+07:00"`), &d))
	assert.Equal(t, NewDate(2024, 3, 15), d)
}

func TestDate_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestCycle_OptionalEndDate(t *testing.T) {
	open := Cycle{ID: "a", StartDate: NewDate(2024, 1, 1)}

	data, err := json.Marshal(open)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "endDate", "open cycles omit the end date entirely")

	var back Cycle
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Open())

	_, ok := back.Duration()
	assert.False(t, ok, "an open cycle has no duration")
}

func TestNewProfile_Defaults(t *testing.T) {
	p := NewProfile("Mèo Ú")

	assert.Equal(t, "Mèo Ú", p.Name)
	assert.Equal(t, 28, p.AverageCycleLength)
	assert.Equal(t, 5, p.AveragePeriodDuration)
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	// 23:30 on Jan 1 in UTC+7 is still Jan 1 for the user even though it
	// is Jan 1 16:30 UTC; conversely 01:30 on Jan 2 must not collapse
	// back to Jan 1.
	loc := time.FixedZone("ICT", 7*3600)
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	early := time.Date(2024, 1, 2, 1, 30, 0, 0, loc)

	assert.Equal(t, NewDate(2024, 1, 1), DateOf(late))
	assert.Equal(t, NewDate(2024, 1, 2), DateOf(early))
}
