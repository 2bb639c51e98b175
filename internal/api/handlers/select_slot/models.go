package select_slot

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
)

var errEmptySelection = errors.New("date or time is required")

// SelectSlotRequest HTTP request model.
// date меняет дату (и сбрасывает время на первый слот), time выбирает слот, "" снимает выбор времени
type SelectSlotRequest struct {
	Date *string `json:"date,omitempty"` // YYYY-MM-DD
	Time *string `json:"time,omitempty"` // HH:00
}

// ParseDate возвращает выбранную дату, если она передана
func (r *SelectSlotRequest) ParseDate() (*time.Time, error) {
	if r.Date == nil && r.Time == nil {
		return nil, errEmptySelection
	}
	if r.Date == nil {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
