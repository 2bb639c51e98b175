package models

import (
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/pkg/textfmt"
)

// Request модели

// UpdateDetailsRequest запрос на изменение темы, заметок и часового пояса.
// Все поля опциональны - обновляются только переданные значения
type UpdateDetailsRequest struct {
	Topic    *string `json:"topic,omitempty" validate:"omitempty,max=200"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Timezone *string `json:"timezone,omitempty"`
}

// Response модели

// DraftResponse состояние черновика для мастера бронирования
type DraftResponse struct {
	MenteeID        string               `json:"menteeId"`
	Mentor          *MentorResponse      `json:"mentor"`
	Availability    []AvailabilityWindow `json:"availability"`
	SelectedDate    *string              `json:"selectedDate"` // "2025-03-10"
	SelectedTime    string               `json:"selectedTime"` // "14:00"
	Topic           string               `json:"topic"`
	Notes           string               `json:"notes"`
	Timezone        string               `json:"timezone"`
	DurationMinutes int                  `json:"durationMinutes"`
	TotalPrice      float64              `json:"totalPrice"`
	Step            int                  `json:"step"`
	StepName        string               `json:"stepName"`
	CanContinue     bool                 `json:"canContinue"`
	CanGoBack       bool                 `json:"canGoBack"`
	DateWindowDays  int                  `json:"dateWindowDays"`
	SessionID       *string              `json:"sessionId"`
	Error           *string              `json:"error"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// MentorResponse данные ментора для отображения
type MentorResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Initials   string  `json:"initials"` // Показываются вместо отсутствующего фото
	Title      string  `json:"title"`
	Picture    string  `json:"picture,omitempty"`
	HourlyRate float64 `json:"hourlyRate"`
}

// AvailabilityWindow недельное окно доступности
type AvailabilityWindow struct {
	DayOfWeek int `json:"dayOfWeek"` // 0 = понедельник
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// FromDomainDraft конвертирует черновик в ответ API
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		MenteeID:        d.MenteeID,
		Mentor:          FromDomainMentor(d.Mentor),
		Availability:    make([]AvailabilityWindow, 0, len(d.Availability)),
		SelectedTime:    d.SelectedTime,
		Topic:           d.Topic,
		Notes:           d.Notes,
		Timezone:        d.Timezone,
		DurationMinutes: d.DurationMinutes,
		TotalPrice:      d.TotalPrice,
		Step:            int(d.Step),
		StepName:        d.Step.String(),
		CanContinue:     d.CanContinue(),
		CanGoBack:       d.Step == domain.StepPayment || d.Step == domain.StepReview,
		DateWindowDays:  d.DateWindowDays,
		SessionID:       d.SessionID,
		Error:           d.Error,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	for _, w := range d.Availability {
		resp.Availability = append(resp.Availability, AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		})
	}

	if d.SelectedDate != nil {
		s := d.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &s
	}

	return resp
}

// FromDomainMentor конвертирует ментора, nil остается nil
func FromDomainMentor(m *domain.MentorSummary) *MentorResponse {
	if m == nil {
		return nil
	}
	return &MentorResponse{
		ID:         m.ID,
		Name:       m.Name,
		Initials:   textfmt.Initials(m.Name),
		Title:      m.Title,
		Picture:    m.Picture,
		HourlyRate: m.HourlyRate,
	}
}
