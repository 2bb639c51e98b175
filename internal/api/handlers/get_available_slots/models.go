package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-MentorBooking/internal/usecase/get_available_slots"
)

// ScrollRequest HTTP request model: позиция ленты дат в пикселях
type ScrollRequest struct {
	Offset   int `json:"offset" validate:"min=0"`
	Viewport int `json:"viewport" validate:"min=0"`
	Content  int `json:"content" validate:"min=0"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Dates        []CandidateDate `json:"dates"`
	WindowDays   int             `json:"windowDays"`
	Date         *string         `json:"date"` // Дата, для которой посчитаны слоты
	SelectedTime string          `json:"selectedTime"`
	Slots        []string        `json:"slots"`
	Extended     bool            `json:"extended"`
}

// CandidateDate дата в ленте выбора
type CandidateDate struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(menteeID, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{MenteeID: menteeID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = &date
	return req, nil
}

// ToUseCaseRequest конвертирует HTTP запрос прокрутки в модель use case
func (r *ScrollRequest) ToUseCaseRequest(menteeID string) *getAvailableSlots.ScrollRequest {
	return &getAvailableSlots.ScrollRequest{
		MenteeID: menteeID,
		Offset:   r.Offset,
		Viewport: r.Viewport,
		Content:  r.Content,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	dates := make([]CandidateDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = CandidateDate{
			Date:      d.Date.Format(domain.DateFormat),
			Weekday:   d.Date.Weekday().String()[:3],
			Available: d.Available,
		}
	}

	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	var date *string
	if resp.Date != nil {
		s := resp.Date.Format(domain.DateFormat)
		date = &s
	}

	return &AvailableSlotsResponse{
		Dates:        dates,
		WindowDays:   resp.WindowDays,
		Date:         date,
		SelectedTime: resp.SelectedTime,
		Slots:        slots,
		Extended:     resp.Extended,
	}
}
