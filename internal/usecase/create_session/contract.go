package create_session

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Get(ctx context.Context, menteeID string) (*domain.BookingDraft, error)
	Save(ctx context.Context, draft *domain.BookingDraft) error
}

// SessionClient интерфейс клиента маркетплейса для создания сессии
type SessionClient interface {
	CreateSession(ctx context.Context, menteeID string, req mentoringapi.CreateSessionRequest, idempotencyKey string) (*mentoringapi.Session, error)
}

// Locker интерфейс блокировки отправки черновика
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для метрик отправки
type MetricsRecorder interface {
	IncSubmission(outcome string)
	IncWizardTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
