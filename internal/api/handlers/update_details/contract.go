package update_details

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
)

type WizardService interface {
	UpdateDetails(ctx context.Context, menteeID string, req *models.UpdateDetailsRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
