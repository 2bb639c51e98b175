package draft

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
)

const tableName = "booking_drafts"

var columns = []string{
	"mentee_id",
	"mentor",
	"availability",
	"selected_date",
	"selected_time",
	"topic",
	"notes",
	"timezone",
	"duration_minutes",
	"total_price",
	"step",
	"date_window_days",
	"session_id",
	"error",
	"idempotency_key",
	"created_at",
	"updated_at",
}

// mentorJSON представление ментора в колонке mentor (JSONB)
type mentorJSON struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Picture    string  `json:"picture"`
	HourlyRate float64 `json:"hourly_rate"`
}

// windowJSON элемент колонки availability (JSONB)
type windowJSON struct {
	DayOfWeek int `json:"day_of_week"`
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// draftRow строка таблицы booking_drafts
type draftRow struct {
	MenteeID        string
	Mentor          []byte
	Availability    []byte
	SelectedDate    sql.NullTime
	SelectedTime    string
	Topic           string
	Notes           string
	Timezone        string
	DurationMinutes int
	TotalPrice      float64
	Step            int
	DateWindowDays  int
	SessionID       sql.NullString
	Error           sql.NullString
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *draftRow) scanTargets() []interface{} {
	return []interface{}{
		&r.MenteeID,
		&r.Mentor,
		&r.Availability,
		&r.SelectedDate,
		&r.SelectedTime,
		&r.Topic,
		&r.Notes,
		&r.Timezone,
		&r.DurationMinutes,
		&r.TotalPrice,
		&r.Step,
		&r.DateWindowDays,
		&r.SessionID,
		&r.Error,
		&r.IdempotencyKey,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

// toRow конвертирует domain-модель в строку таблицы
func toRow(d *domain.BookingDraft) (*draftRow, error) {
	row := &draftRow{
		MenteeID:        d.MenteeID,
		SelectedTime:    d.SelectedTime,
		Topic:           d.Topic,
		Notes:           d.Notes,
		Timezone:        d.Timezone,
		DurationMinutes: d.DurationMinutes,
		TotalPrice:      d.TotalPrice,
		Step:            int(d.Step),
		DateWindowDays:  d.DateWindowDays,
		IdempotencyKey:  d.IdempotencyKey,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	if d.Mentor != nil {
		raw, err := json.Marshal(mentorJSON{
			ID:         d.Mentor.ID,
			Name:       d.Mentor.Name,
			Title:      d.Mentor.Title,
			Picture:    d.Mentor.Picture,
			HourlyRate: d.Mentor.HourlyRate,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: mentor: %v", ErrEncode, err)
		}
		row.Mentor = raw
	}

	windows := make([]windowJSON, 0, len(d.Availability))
	for _, w := range d.Availability {
		windows = append(windows, windowJSON{DayOfWeek: w.DayOfWeek, StartHour: w.StartHour, EndHour: w.EndHour})
	}
	raw, err := json.Marshal(windows)
	if err != nil {
		return nil, fmt.Errorf("%w: availability: %v", ErrEncode, err)
	}
	row.Availability = raw

	if d.SelectedDate != nil {
		row.SelectedDate = sql.NullTime{Time: *d.SelectedDate, Valid: true}
	}
	if d.SessionID != nil {
		row.SessionID = sql.NullString{String: *d.SessionID, Valid: true}
	}
	if d.Error != nil {
		row.Error = sql.NullString{String: *d.Error, Valid: true}
	}

	return row, nil
}

// toDomain конвертирует строку таблицы в domain-модель
func (r *draftRow) toDomain() (*domain.BookingDraft, error) {
	d := &domain.BookingDraft{
		MenteeID:        r.MenteeID,
		SelectedTime:    r.SelectedTime,
		Topic:           r.Topic,
		Notes:           r.Notes,
		Timezone:        r.Timezone,
		DurationMinutes: r.DurationMinutes,
		TotalPrice:      r.TotalPrice,
		Step:            domain.WizardStep(r.Step),
		DateWindowDays:  r.DateWindowDays,
		IdempotencyKey:  r.IdempotencyKey,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if len(r.Mentor) > 0 && string(r.Mentor) != "null" {
		var m mentorJSON
		if err := json.Unmarshal(r.Mentor, &m); err != nil {
			return nil, fmt.Errorf("%w: mentor: %v", ErrEncode, err)
		}
		d.Mentor = &domain.MentorSummary{
			ID:         m.ID,
			Name:       m.Name,
			Title:      m.Title,
			Picture:    m.Picture,
			HourlyRate: m.HourlyRate,
		}
	}

	if len(r.Availability) > 0 {
		var windows []windowJSON
		if err := json.Unmarshal(r.Availability, &windows); err != nil {
			return nil, fmt.Errorf("%w: availability: %v", ErrEncode, err)
		}
		if len(windows) > 0 {
			d.Availability = make([]domain.AvailabilityWindow, 0, len(windows))
			for _, w := range windows {
				d.Availability = append(d.Availability, domain.AvailabilityWindow{
					DayOfWeek: w.DayOfWeek,
					StartHour: w.StartHour,
					EndHour:   w.EndHour,
				})
			}
		}
	}

	if r.SelectedDate.Valid {
		day := domain.DateOnly(r.SelectedDate.Time)
		d.SelectedDate = &day
	}
	if r.SessionID.Valid {
		d.SessionID = &r.SessionID.String
	}
	if r.Error.Valid {
		d.Error = &r.Error.String
	}

	return d, nil
}
