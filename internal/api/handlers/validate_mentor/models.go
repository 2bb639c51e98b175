package validate_mentor

import "github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"

// ValidateMentorRequest HTTP request model
type ValidateMentorRequest struct {
	Approved *bool  `json:"approved" validate:"required"`
	Reason   string `json:"reason,omitempty" validate:"max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ValidateMentorRequest) ToServiceRequest() *models.ValidateMentorRequest {
	return &models.ValidateMentorRequest{
		Approved: *r.Approved,
		Reason:   r.Reason,
	}
}
