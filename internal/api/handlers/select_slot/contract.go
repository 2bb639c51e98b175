package select_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
)

type WizardService interface {
	SelectSlot(ctx context.Context, menteeID string, date *time.Time, timeOfDay *string) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
