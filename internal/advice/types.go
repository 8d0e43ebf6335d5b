package advice

import (
	"encoding/json"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

// Daily is one day's wellness suggestion: a mood line, a three-meal menu
// and a short list of activities. One entry is cached per calendar day.
type Daily struct {
	Date       cycle.Date `json:"date"`
	Mood       string     `json:"mood"`
	Menu       Menu       `json:"menu"`
	Activities []Activity `json:"activities"`
}

// Menu is the suggested three meals for the day.
type Menu struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// Activity pairs a suggestion with a decorative emoji.
type Activity struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// UnmarshalJSON tolerates the legacy representation where an activity was
// persisted as a bare string. Such entries decode with a fallback emoji,
// so cached advice written by old clients still renders. This is the one
// place in the codebase that knows about the old shape.
func (a *Activity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		a.Emoji = config.FallbackActivityEmoji
		a.Text = text
		return nil
	}

	type plain Activity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Activity(p)
	return nil
}
