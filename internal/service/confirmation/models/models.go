package models

import wizardModels "github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"

// SummaryResponse итог бронирования для панели подтверждения
type SummaryResponse struct {
	SessionID       string                       `json:"sessionId"`
	Mentor          *wizardModels.MentorResponse `json:"mentor"`
	Date            string                       `json:"date"` // "2025-03-10"
	Time            string                       `json:"time"` // "14:00"
	Timezone        string                       `json:"timezone"`
	ScheduledAt     string                       `json:"scheduledAt"` // RFC3339 в часовом поясе менти
	DurationMinutes int                          `json:"durationMinutes"`
	TotalPrice      float64                      `json:"totalPrice"`
	Topic           string                       `json:"topic"`
	Notes           string                       `json:"notes"`
	CalendarURL     string                       `json:"calendarUrl"`
}
