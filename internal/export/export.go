package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

// Generator renders the cycle history and the next-period forecast as an
// iCalendar object, one all-day event per recorded period plus one event
// for the prediction. Importing the file into any calendar app gives the
// user their history alongside their other events.
type Generator struct {
	Clock cycle.Clock

	// FormatPeriod and FormatForecast allow the caller to inject
	// localized event summaries into the export logic.
	FormatPeriod   func(name string) string
	FormatForecast func(name string) string
}

// NewGenerator creates a generator with a real clock.
func NewGenerator() *Generator {
	return &Generator{Clock: cycle.RealClock{}}
}

// Generate builds the ICS document. With no cycles it returns a minimal
// valid calendar rather than an error.
func (g *Generator) Generate(p cycle.Profile, cycles []cycle.Cycle) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, c := range cycle.Sorted(cycles) {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(c.ID, c.StartDate))
		event.Props.SetText(config.PropSummary, g.periodSummary(p.Name))

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(c.StartDate.Time)
		event.Props.Set(dtStart)

		// All-day DTEND is exclusive, so a period ending Jan 5 spans
		// through Jan 5 by ending on Jan 6.
		if c.EndDate != nil {
			dtEnd := ical.NewProp(config.PropDTEnd)
			dtEnd.SetDate(c.EndDate.AddDays(1).Time)
			event.Props.Set(dtEnd)
		}

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if next, _, ok := cycle.Forecast(p, cycles, now); ok {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(config.ForecastUIDKey, next))
		event.Props.SetText(config.PropSummary, g.forecastSummary(p.Name))

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(next.Time)
		event.Props.Set(dtStart)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, len(cal.Children),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// eventUID derives a deterministic identifier so re-exports update events
// in place instead of duplicating them.
func eventUID(id string, start cycle.Date) string {
	input := fmt.Sprintf(config.FormatHashInput, id, start.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, start.String(), config.ICalDomain)
}

func (g *Generator) periodSummary(name string) string {
	if g.FormatPeriod != nil {
		return g.FormatPeriod(name)
	}
	return fmt.Sprintf("Period (%s)", name)
}

func (g *Generator) forecastSummary(name string) string {
	if g.FormatForecast != nil {
		return g.FormatForecast(name)
	}
	return fmt.Sprintf("Predicted period (%s)", name)
}
