package confirmation

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Get(ctx context.Context, menteeID string) (*domain.BookingDraft, error)
	Save(ctx context.Context, draft *domain.BookingDraft) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета переходов мастера
type MetricsRecorder interface {
	IncWizardTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
