package domain

// MentorSummary is the part of a mentor profile the booking flow needs.
// Populated once when the wizard mounts.
type MentorSummary struct {
	ID         string
	Name       string
	Title      string
	Picture    string
	HourlyRate float64
}

// AvailabilityWindow is a recurring weekly interval.
// DayOfWeek is 0=Monday..6=Sunday, hours are whole hours of the day.
type AvailabilityWindow struct {
	DayOfWeek int
	StartHour int
	EndHour   int
}

// IsValid reports whether the window covers at least one hour.
// Invalid windows are kept and simply yield no slots.
func (w AvailabilityWindow) IsValid() bool {
	return w.DayOfWeek >= 0 && w.DayOfWeek <= 6 &&
		w.StartHour >= 0 && w.EndHour <= 24 &&
		w.StartHour < w.EndHour
}

// SessionType is an offering configured by the mentor
type SessionType struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
}
