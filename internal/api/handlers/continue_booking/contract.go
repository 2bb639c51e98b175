package continue_booking

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
)

type WizardService interface {
	Continue(ctx context.Context, menteeID string) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
