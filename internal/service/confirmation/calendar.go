package confirmation

import (
	"net/url"
	"strings"
	"time"
)

const (
	calendarBaseURL  = "https://calendar.google.com/calendar/render"
	compactUTCLayout = "20060102T150405Z"
)

// CalendarEvent данные события для ссылки в календарь
type CalendarEvent struct {
	Title    string
	Details  string
	Location string
	Start    time.Time
	Duration time.Duration
}

// CalendarURL строит ссылку на создание события в Google Calendar.
// Текстовые поля кодируются целиком, время передается интервалом START/END в UTC.
func CalendarURL(ev CalendarEvent) string {
	end := ev.Start.Add(ev.Duration)

	var b strings.Builder
	b.WriteString(calendarBaseURL)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=")
	b.WriteString(encodeComponent(ev.Title))
	b.WriteString("&dates=")
	b.WriteString(FormatCompactUTC(ev.Start))
	b.WriteString("/")
	b.WriteString(FormatCompactUTC(end))
	b.WriteString("&details=")
	b.WriteString(encodeComponent(ev.Details))
	b.WriteString("&location=")
	b.WriteString(encodeComponent(ev.Location))
	return b.String()
}

// FormatCompactUTC форматирует время как YYYYMMDDTHHMMSSZ в UTC, доли секунды отбрасываются
func FormatCompactUTC(t time.Time) string {
	return t.UTC().Format(compactUTCLayout)
}

// encodeComponent кодирует пробел как %20, а не +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
