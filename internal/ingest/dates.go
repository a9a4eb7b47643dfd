package ingest

import (
	"time"

	"github.com/pfleegoree/planit/internal/provider/ticketmaster"
)

const defaultEventDuration = 2 * time.Hour

// parseInstant parses an absolute date-time string, accepting both the
// zero-offset form (...Z) and explicit offsets (...-05:00).
func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// resolveStart determines the event start instant, in priority order:
// an absolute dates.start.dateTime, else dates.start.localDate (with
// localTime defaulting to midnight) interpreted in dates.timezone.
// A present but unparseable dateTime does not fall back to the local
// date; the start is simply unusable for this cycle.
func resolveStart(d ticketmaster.Dates) (time.Time, bool) {
	if d.Start == nil {
		return time.Time{}, false
	}

	if d.Start.DateTime != "" {
		return parseInstant(d.Start.DateTime)
	}

	if d.Start.LocalDate == "" {
		return time.Time{}, false
	}

	localTime := d.Start.LocalTime
	if localTime == "" {
		localTime = "00:00:00"
	}

	tz := d.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation("2006-01-02 15:04:05", d.Start.LocalDate+" "+localTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// resolveEnd determines the event end instant for a known start: the
// explicit dates.end.dateTime when parseable, else start plus the
// default two-hour duration.
func resolveEnd(d ticketmaster.Dates, start time.Time) time.Time {
	if end, ok := parseInstant(d.EndDateTime()); ok {
		return end
	}
	return start.Add(defaultEventDuration)
}

// formatInstant serializes an instant in the fixed sortable UTC form
// stored on events, e.g. 2026-02-20T01:30:00Z.
func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
