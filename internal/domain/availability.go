package domain

import (
	"time"

	"github.com/m04kA/SMC-MentorBooking/pkg/types"
)

// RemapWeekday converts Go's Sunday-based weekday to the Monday-based index
// used by AvailabilityWindow.DayOfWeek.
func RemapWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// DateOnly strips the clock from t and returns midnight UTC of the same calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GenerateCandidateDates returns days consecutive dates starting tomorrow
// relative to now's calendar day in now's location.
func GenerateCandidateDates(now time.Time, days int) []time.Time {
	if days <= 0 {
		return []time.Time{}
	}

	start := DateOnly(now).AddDate(0, 0, 1)
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// HasWindow reports whether any window falls on the weekday of date
func HasWindow(windows []AvailabilityWindow, date time.Time) bool {
	dow := RemapWeekday(date.Weekday())
	for _, w := range windows {
		if w.DayOfWeek == dow {
			return true
		}
	}
	return false
}

// SlotsForDate expands every window matching date's weekday into "HH:00" slots,
// in window order and then hour order. Overlapping windows produce repeated hours.
func SlotsForDate(windows []AvailabilityWindow, date time.Time) []string {
	dow := RemapWeekday(date.Weekday())
	slots := make([]string, 0)

	for _, w := range windows {
		if w.DayOfWeek != dow {
			continue
		}
		for h := w.StartHour; h < w.EndHour; h++ {
			ts, err := types.NewTimeStringFromHour(h)
			if err != nil {
				continue
			}
			slots = append(slots, ts.String())
		}
	}

	return slots
}

// FirstAvailableDate scans dates in order and returns the first one with a window
func FirstAvailableDate(dates []time.Time, windows []AvailabilityWindow) (time.Time, bool) {
	for _, d := range dates {
		if HasWindow(windows, d) {
			return d, true
		}
	}
	return time.Time{}, false
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// ResolveLocation loads the IANA zone tz, or returns fallback when tz is empty
func ResolveLocation(tz string, fallback *time.Location) (*time.Location, error) {
	if tz == "" {
		if fallback == nil {
			return time.UTC, nil
		}
		return fallback, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}
