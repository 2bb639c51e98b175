package start_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
)

// MentoringClient интерфейс клиента маркетплейса
type MentoringClient interface {
	GetMentor(ctx context.Context, mentorID string) (*mentoringapi.Mentor, error)
	GetAvailability(ctx context.Context, mentorID string) ([]mentoringapi.AvailabilityWindow, error)
	GetSessionTypes(ctx context.Context, mentorID string) ([]mentoringapi.SessionType, error)
}

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Save(ctx context.Context, draft *domain.BookingDraft) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета переходов мастера
type MetricsRecorder interface {
	IncWizardTransition(from, to string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
