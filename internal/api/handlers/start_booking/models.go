package start_booking

import (
	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
	startBooking "github.com/m04kA/SMC-MentorBooking/internal/usecase/start_booking"
)

// StartBookingRequest HTTP request model
type StartBookingRequest struct {
	MentorID string `json:"mentorId" validate:"required"`
	Timezone string `json:"timezone,omitempty"` // IANA, например "Europe/Moscow"
}

// StartBookingResponse HTTP response model
type StartBookingResponse struct {
	Draft        *models.DraftResponse `json:"draft"`
	SessionTypes []SessionType         `json:"sessionTypes"`
}

// SessionType тип сессии ментора
type SessionType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartBookingRequest) ToUseCaseRequest(menteeID string) *startBooking.Request {
	return &startBooking.Request{
		MenteeID: menteeID,
		MentorID: r.MentorID,
		Timezone: r.Timezone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startBooking.Response) *StartBookingResponse {
	return &StartBookingResponse{
		Draft:        models.FromDomainDraft(resp.Draft),
		SessionTypes: fromDomainSessionTypes(resp.SessionTypes),
	}
}

func fromDomainSessionTypes(types []domain.SessionType) []SessionType {
	result := make([]SessionType, len(types))
	for i, t := range types {
		result[i] = SessionType{
			ID:              t.ID,
			Name:            t.Name,
			DurationMinutes: t.DurationMinutes,
			Price:           t.Price,
		}
	}
	return result
}
