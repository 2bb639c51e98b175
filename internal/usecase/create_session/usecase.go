package create_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/infra/lock"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
)

// UseCase use case отправки черновика: создание сессии в маркетплейсе
type UseCase struct {
	draftRepo       DraftRepository
	client          SessionClient
	locker          Locker
	txManager       TransactionManager
	metrics         MetricsRecorder
	defaultLocation *time.Location
	newKey          func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	client SessionClient,
	locker Locker,
	txManager TransactionManager,
	metrics MetricsRecorder,
	defaultLocation *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:       draftRepo,
		client:          client,
		locker:          locker,
		txManager:       txManager,
		metrics:         metrics,
		defaultLocation: defaultLocation,
		newKey:          uuid.NewString,
		logger:          logger,
	}
}

// Execute отправляет черновик менти.
// Повторов нет: при ошибке черновик остается на шаге подтверждения с сохраненной ошибкой,
// выбранные дата, время и тема не меняются.
// Одновременная отправка одного черновика запрещена блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSession: mentee=%s", req.MenteeID)

	if req.MenteeID == "" {
		return nil, fmt.Errorf("%w: menteeID is required", ErrInvalidInput)
	}

	var resp *Response
	err := uc.locker.WithLock(ctx, req.MenteeID, func(lockCtx context.Context) error {
		var err error
		resp, err = uc.submit(lockCtx, req.MenteeID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, lock.ErrLockNotAcquired):
			uc.logger.Warn("CreateSession: submission for mentee=%s already in progress", req.MenteeID)
			return nil, ErrSubmissionInProgress
		case errors.Is(err, lock.ErrLockUnavailable):
			uc.logger.Error("CreateSession: lock unavailable for mentee=%s: %v", req.MenteeID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		default:
			return nil, err
		}
	}

	return resp, nil
}

func (uc *UseCase) submit(ctx context.Context, menteeID string) (*Response, error) {
	// 1. Проверяем черновик и закрепляем ключ идемпотентности
	var payload mentoringapi.CreateSessionRequest
	var key string

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		draft, err := uc.getDraft(txCtx, menteeID)
		if err != nil {
			return err
		}

		payload, err = uc.buildPayload(draft)
		if err != nil {
			return err
		}

		if draft.IdempotencyKey == "" {
			key = draft.EnsureIdempotencyKey(uc.newKey)
			if err := uc.draftRepo.Save(txCtx, draft); err != nil {
				uc.logger.Error("CreateSession: failed to save draft for mentee=%s: %v", menteeID, err)
				return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
			}
			return nil
		}
		key = draft.IdempotencyKey
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 2. Создаем сессию вне транзакции
	session, callErr := uc.client.CreateSession(ctx, menteeID, payload, key)

	// 3. Фиксируем результат в черновике
	var result *domain.BookingDraft
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		draft, err := uc.getDraft(txCtx, menteeID)
		if err != nil {
			return err
		}

		if callErr != nil {
			draft.MarkFailed(failureMessage(callErr))
		} else {
			draft.MarkSubmitted(session.ID)
		}

		if err := uc.draftRepo.Save(txCtx, draft); err != nil {
			uc.logger.Error("CreateSession: failed to save draft for mentee=%s: %v", menteeID, err)
			return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
		result = draft
		return nil
	})

	if callErr != nil {
		return nil, uc.failed(menteeID, callErr)
	}
	if err != nil {
		// Сессия создана, но черновик не обновлен: повтор с тем же ключом не создаст дубль
		return nil, err
	}

	uc.metrics.IncSubmission(outcomeSuccess)
	uc.metrics.IncWizardTransition(domain.StepReview.String(), domain.StepConfirmed.String())
	uc.logger.Info("CreateSession: session=%s created for mentee=%s", session.ID, menteeID)

	return &Response{
		SessionID: session.ID,
		Draft:     result,
	}, nil
}

func (uc *UseCase) getDraft(ctx context.Context, menteeID string) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.Get(ctx, menteeID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("CreateSession: draft for mentee=%s not found", menteeID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("CreateSession: failed to get draft for mentee=%s: %v", menteeID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}
	return draft, nil
}

// buildPayload проверяет предусловия и собирает запрос на создание сессии
func (uc *UseCase) buildPayload(draft *domain.BookingDraft) (mentoringapi.CreateSessionRequest, error) {
	if draft.IsTerminal() {
		return mentoringapi.CreateSessionRequest{}, ErrAlreadySubmitted
	}
	if draft.Step != domain.StepReview {
		uc.logger.Warn("CreateSession: mentee=%s is on step %s", draft.MenteeID, draft.Step)
		return mentoringapi.CreateSessionRequest{}, ErrInvalidStep
	}
	if draft.Mentor == nil {
		return mentoringapi.CreateSessionRequest{}, fmt.Errorf("%w: mentor is not set", ErrIncomplete)
	}

	loc, err := domain.ResolveLocation(draft.Timezone, uc.defaultLocation)
	if err != nil {
		uc.logger.Warn("CreateSession: mentee=%s has invalid timezone %q", draft.MenteeID, draft.Timezone)
		return mentoringapi.CreateSessionRequest{}, ErrInvalidTimezone
	}

	scheduledAt, err := draft.ScheduledAt(loc)
	if err != nil {
		return mentoringapi.CreateSessionRequest{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	return mentoringapi.CreateSessionRequest{
		MentorID:        draft.Mentor.ID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: draft.DurationMinutes,
		Timezone:        loc.String(),
		Topic:           draft.EffectiveTopic(),
		Notes:           draft.Notes,
		Objectives:      draft.Objectives(),
	}, nil
}

func (uc *UseCase) failed(menteeID string, err error) error {
	if errors.Is(err, mentoringapi.ErrRejected) || errors.Is(err, mentoringapi.ErrMentorNotFound) {
		uc.metrics.IncSubmission(outcomeRejected)
		uc.logger.Warn("CreateSession: request for mentee=%s rejected: %v", menteeID, err)
		return fmt.Errorf("%w: %v", ErrSessionRejected, err)
	}
	uc.metrics.IncSubmission(outcomeFailed)
	uc.logger.Error("CreateSession: failed to create session for mentee=%s: %v", menteeID, err)
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func failureMessage(err error) string {
	if errors.Is(err, mentoringapi.ErrRejected) || errors.Is(err, mentoringapi.ErrMentorNotFound) {
		return msgSessionRejected
	}
	return msgSubmissionFailed
}
