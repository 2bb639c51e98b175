package confirmation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/service/confirmation/models"
	wizardModels "github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
)

// Service сервис панели подтверждения
type Service struct {
	draftRepo        DraftRepository
	txManager        TransactionManager
	metrics          MetricsRecorder
	defaultLocation  *time.Location
	calendarLocation string
	logger           Logger
}

// NewService создает новый экземпляр сервиса.
// calendarLocation - место встречи, которое попадает в ссылку на календарь.
func NewService(
	draftRepo DraftRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	defaultLocation *time.Location,
	calendarLocation string,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:        draftRepo,
		txManager:        txManager,
		metrics:          metrics,
		defaultLocation:  defaultLocation,
		calendarLocation: calendarLocation,
		logger:           logger,
	}
}

// Summary возвращает итог подтвержденного бронирования и ссылку на календарь
func (s *Service) Summary(ctx context.Context, menteeID string) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: mentee=%s", menteeID)

	var draft *domain.BookingDraft
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = s.getDraft(txCtx, "Summary", menteeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !draft.IsTerminal() || draft.SessionID == nil {
		s.logger.Warn("Summary: draft for mentee=%s is on step %s", menteeID, draft.Step)
		return nil, ErrNotConfirmed
	}

	loc, err := domain.ResolveLocation(draft.Timezone, s.defaultLocation)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	start, err := draft.ScheduledAt(loc)
	if err != nil {
		s.logger.Error("Summary: confirmed draft for mentee=%s has no date or time: %v", menteeID, err)
		return nil, fmt.Errorf("%w: Summary - incomplete confirmed draft: %v", ErrInternal, err)
	}

	topic := draft.EffectiveTopic()
	title := topic
	if draft.Mentor != nil && draft.Mentor.Name != "" {
		title = fmt.Sprintf("%s with %s", topic, draft.Mentor.Name)
	}

	return &models.SummaryResponse{
		SessionID:       *draft.SessionID,
		Mentor:          wizardModels.FromDomainMentor(draft.Mentor),
		Date:            draft.SelectedDate.Format(domain.DateFormat),
		Time:            draft.SelectedTime,
		Timezone:        loc.String(),
		ScheduledAt:     start.Format(time.RFC3339),
		DurationMinutes: draft.DurationMinutes,
		TotalPrice:      draft.TotalPrice,
		Topic:           topic,
		Notes:           draft.Notes,
		CalendarURL: CalendarURL(CalendarEvent{
			Title:    title,
			Details:  draft.Notes,
			Location: s.calendarLocation,
			Start:    start,
			Duration: time.Duration(draft.DurationMinutes) * time.Minute,
		}),
	}, nil
}

// Reset возвращает черновик к начальному состоянию. Доступно на любом шаге.
func (s *Service) Reset(ctx context.Context, menteeID string) (*wizardModels.DraftResponse, error) {
	s.logger.Info("Reset: mentee=%s", menteeID)

	var (
		draft *domain.BookingDraft
		from  domain.WizardStep
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = s.getDraft(txCtx, "Reset", menteeID)
		if err != nil {
			return err
		}

		from = draft.Step
		draft.Reset()

		if err := s.draftRepo.Save(txCtx, draft); err != nil {
			s.logger.Error("Reset: failed to save draft for mentee=%s: %v", menteeID, err)
			return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncWizardTransition(from.String(), draft.Step.String())
	return wizardModels.FromDomainDraft(draft), nil
}

func (s *Service) getDraft(ctx context.Context, op, menteeID string) (*domain.BookingDraft, error) {
	draft, err := s.draftRepo.Get(ctx, menteeID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("%s: draft for mentee=%s not found", op, menteeID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("%s: repository error for mentee=%s: %v", op, menteeID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return draft, nil
}
