package directory

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
)

// MentoringClient интерфейс клиента маркетплейса для списков и админки
type MentoringClient interface {
	ListMentors(ctx context.Context) ([]mentoringapi.Mentor, error)
	ListMentorApplications(ctx context.Context) ([]mentoringapi.Mentor, error)
	ListUsers(ctx context.Context) ([]mentoringapi.User, error)
	ValidateMentor(ctx context.Context, mentorID string, decision mentoringapi.ValidationDecision) error
	ListPayments(ctx context.Context, menteeID string) ([]mentoringapi.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
