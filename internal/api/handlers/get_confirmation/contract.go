package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/confirmation/models"
)

type ConfirmationService interface {
	Summary(ctx context.Context, menteeID string) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
