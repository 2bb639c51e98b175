package domain

// Booking defaults
const (
	DefaultDurationMinutes = 60
	DefaultTopic           = "Mentoring Session"
	DefaultDateWindowDays  = 30
	DateWindowStep         = 30
	ScrollThresholdPx      = 200
)

// Business validation constants
const (
	MaxTopicLength = 200
	MaxNotesLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
