// Package calendarlink builds "add to calendar" template URLs.
package calendarlink

import (
	"net/url"
	"strings"
	"time"

	"communion.invite/models"
)

const (
	// GoogleRenderURL is the Google Calendar event template endpoint.
	GoogleRenderURL = "https://calendar.google.com/calendar/render"

	// DateTimeLayout is the ISO-8601 basic date-time format without zone designator.
	DateTimeLayout = "20060102T150405"
)

// Build returns a Google Calendar URL that pre-fills a new event from ev.
// Parameters are emitted in a fixed order: action, text, dates, details, location.
// It never fails and has no side effects.
func Build(ev models.EventInfo) string {
	var b strings.Builder
	b.WriteString(GoogleRenderURL)
	b.WriteString("?action=TEMPLATE")
	writeParam(&b, "text", Escape(ev.Title))
	writeParam(&b, "dates", FormatRange(ev.Start, ev.End))
	writeParam(&b, "details", Escape(ev.Description))
	writeParam(&b, "location", Escape(ev.Location))
	return b.String()
}

// FormatRange renders start and end as "YYYYMMDDTHHMMSS/YYYYMMDDTHHMMSS" using
// the wall-clock fields of each time.
func FormatRange(start, end time.Time) string {
	return start.Format(DateTimeLayout) + "/" + end.Format(DateTimeLayout)
}

// Escape percent-encodes s for use as a query value. Spaces become %20 rather
// than '+', so the value reads the same to clients that do not decode '+'.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func writeParam(b *strings.Builder, key, value string) {
	b.WriteByte('&')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}
