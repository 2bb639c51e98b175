package update_details

import (
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
)

// UpdateDetailsRequest HTTP request model. Переданные поля заменяют значения в черновике
type UpdateDetailsRequest struct {
	Topic    *string `json:"topic,omitempty" validate:"omitempty,max=200"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Timezone *string `json:"timezone,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateDetailsRequest) ToServiceRequest() *models.UpdateDetailsRequest {
	return &models.UpdateDetailsRequest{
		Topic:    r.Topic,
		Notes:    r.Notes,
		Timezone: r.Timezone,
	}
}
