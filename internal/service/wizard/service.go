package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
	"github.com/m04kA/SMC-MentorBooking/internal/usecase/create_session"
	"github.com/m04kA/SMC-MentorBooking/pkg/ptr"
)

// Service сервис шагов мастера бронирования.
// Каждая операция читает черновик, меняет его через методы домена и сохраняет в одной транзакции.
type Service struct {
	draftRepo       DraftRepository
	submitter       SessionSubmitter
	txManager       TransactionManager
	metrics         MetricsRecorder
	defaultLocation *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса мастера
func NewService(
	draftRepo DraftRepository,
	submitter SessionSubmitter,
	txManager TransactionManager,
	metrics MetricsRecorder,
	defaultLocation *time.Location,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:       draftRepo,
		submitter:       submitter,
		txManager:       txManager,
		metrics:         metrics,
		defaultLocation: defaultLocation,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Get возвращает текущее состояние черновика менти
func (s *Service) Get(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	var draft *domain.BookingDraft
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = s.getDraft(txCtx, "Get", menteeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(draft), nil
}

// SelectDate выбирает дату на шаге 1.
// Дата должна быть в текущей ленте и иметь хотя бы одно окно; время перевыбирается автоматически,
// если прежнее не предлагается для новой даты.
func (s *Service) SelectDate(ctx context.Context, menteeID string, date time.Time) (*models.DraftResponse, error) {
	return s.SelectSlot(ctx, menteeID, &date, nil)
}

// SelectTime выбирает время на шаге 1, время должно быть одним из слотов выбранной даты
func (s *Service) SelectTime(ctx context.Context, menteeID, timeOfDay string) (*models.DraftResponse, error) {
	return s.SelectSlot(ctx, menteeID, nil, &timeOfDay)
}

// SelectSlot выбирает дату и/или время в одной транзакции.
// Если время отклонено, смена даты тоже не сохраняется.
func (s *Service) SelectSlot(ctx context.Context, menteeID string, date *time.Time, timeOfDay *string) (*models.DraftResponse, error) {
	s.logger.Info("SelectSlot: mentee=%s, date=%v, time=%v", menteeID, ptr.Value(date), ptr.Value(timeOfDay))

	if date == nil && timeOfDay == nil {
		return nil, fmt.Errorf("%w: date or time is required", ErrInvalidInput)
	}

	return s.mutate(ctx, "SelectSlot", menteeID, func(d *domain.BookingDraft) error {
		if date != nil {
			if err := s.applyDate(d, *date); err != nil {
				return err
			}
		}
		if timeOfDay != nil {
			return applyTime(d, *timeOfDay)
		}
		return nil
	})
}

func (s *Service) applyDate(d *domain.BookingDraft, date time.Time) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	if d.Step != domain.StepSelectDateTime {
		return ErrInvalidStep
	}

	now, err := s.localNow(d)
	if err != nil {
		return err
	}

	day := domain.DateOnly(date)
	if !inWindow(day, domain.GenerateCandidateDates(now, d.DateWindowDays)) || !domain.HasWindow(d.Availability, day) {
		return ErrDateUnavailable
	}

	if err := d.SetDate(day); err != nil {
		return err
	}
	d.EnterStep1(now)
	return nil
}

func applyTime(d *domain.BookingDraft, timeOfDay string) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	if d.Step != domain.StepSelectDateTime {
		return ErrInvalidStep
	}
	if d.SelectedDate == nil {
		return ErrDateNotSelected
	}

	if err := d.SetTime(timeOfDay); err != nil {
		return err
	}
	if d.SelectedTime == "" {
		return nil
	}

	for _, slot := range domain.SlotsForDate(d.Availability, *d.SelectedDate) {
		if slot == d.SelectedTime {
			return nil
		}
	}
	return ErrSlotUnavailable
}

// UpdateDetails меняет тему, заметки и часовой пояс на любом незавершенном шаге
func (s *Service) UpdateDetails(ctx context.Context, menteeID string, req *models.UpdateDetailsRequest) (*models.DraftResponse, error) {
	s.logger.Info("UpdateDetails: mentee=%s", menteeID)

	if req.Topic != nil && utf8.RuneCountInString(*req.Topic) > domain.MaxTopicLength {
		return nil, fmt.Errorf("%w: topic is longer than %d characters", ErrInvalidInput, domain.MaxTopicLength)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.Timezone != nil && strings.TrimSpace(*req.Timezone) != "" {
		if _, err := domain.ResolveLocation(*req.Timezone, s.defaultLocation); err != nil {
			return nil, ErrInvalidTimezone
		}
	}

	return s.mutate(ctx, "UpdateDetails", menteeID, func(d *domain.BookingDraft) error {
		if req.Topic != nil {
			if err := d.SetTopic(*req.Topic); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			if err := d.SetNotes(*req.Notes); err != nil {
				return err
			}
		}
		if req.Timezone != nil {
			if d.IsTerminal() {
				return ErrFlowFinished
			}
			d.SetTimezone(*req.Timezone)

			// Лента дат считается от "завтра" в поясе менти, поэтому на шаге 1 выбор пересчитывается
			if d.Step == domain.StepSelectDateTime {
				now, err := s.localNow(d)
				if err != nil {
					return err
				}
				d.DropStaleSelection(now)
				d.EnterStep1(now)
			}
		}
		return nil
	})
}

// Continue переводит мастер на следующий шаг.
// На шаге подтверждения создает сессию; ошибка создания сохраняется в черновике.
func (s *Service) Continue(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	s.logger.Info("Continue: mentee=%s", menteeID)

	var draft *domain.BookingDraft
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = s.getDraft(txCtx, "Continue", menteeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if draft.Step == domain.StepReview {
		return s.submit(ctx, menteeID)
	}

	var from domain.WizardStep
	resp, err := s.mutate(ctx, "Continue", menteeID, func(d *domain.BookingDraft) error {
		from = d.Step
		return d.Continue()
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncWizardTransition(from.String(), resp.StepName)
	return resp, nil
}

// Back возвращает мастер на предыдущий шаг, при возврате на шаг 1 повторяется автовыбор
func (s *Service) Back(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	s.logger.Info("Back: mentee=%s", menteeID)

	var from domain.WizardStep
	resp, err := s.mutate(ctx, "Back", menteeID, func(d *domain.BookingDraft) error {
		from = d.Step
		if err := d.Back(); err != nil {
			return err
		}
		if d.Step == domain.StepSelectDateTime {
			now, err := s.localNow(d)
			if err != nil {
				return err
			}
			d.EnterStep1(now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncWizardTransition(from.String(), resp.StepName)
	return resp, nil
}

// EnterStep1 повторяет автовыбор первой доступной даты и первого слота. На других шагах ничего не меняет.
func (s *Service) EnterStep1(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	return s.mutate(ctx, "EnterStep1", menteeID, func(d *domain.BookingDraft) error {
		if d.Step != domain.StepSelectDateTime {
			return nil
		}
		now, err := s.localNow(d)
		if err != nil {
			return err
		}
		d.EnterStep1(now)
		return nil
	})
}

func (s *Service) submit(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	resp, err := s.submitter.Execute(ctx, &create_session.Request{MenteeID: menteeID})
	if err != nil {
		return nil, mapSubmitError(err)
	}
	return models.FromDomainDraft(resp.Draft), nil
}

// mutate выполняет fn над черновиком в транзакции и сохраняет результат
func (s *Service) mutate(ctx context.Context, op, menteeID string, fn func(d *domain.BookingDraft) error) (*models.DraftResponse, error) {
	var draft *domain.BookingDraft

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = s.getDraft(txCtx, op, menteeID)
		if err != nil {
			return err
		}

		if err := fn(draft); err != nil {
			s.logger.Warn("%s: mentee=%s rejected on step %s: %v", op, menteeID, draft.Step, err)
			return mapDomainError(err)
		}

		if err := s.draftRepo.Save(txCtx, draft); err != nil {
			s.logger.Error("%s: failed to save draft for mentee=%s: %v", op, menteeID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainDraft(draft), nil
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

// localNow текущее время в часовом поясе менти
func (s *Service) localNow(d *domain.BookingDraft) (time.Time, error) {
	loc, err := domain.ResolveLocation(d.Timezone, s.defaultLocation)
	if err != nil {
		return time.Time{}, ErrInvalidTimezone
	}
	return s.timeProvider.Now().In(loc), nil
}

func inWindow(day time.Time, dates []time.Time) bool {
	if len(dates) == 0 {
		return false
	}
	return !day.Before(dates[0]) && !day.After(dates[len(dates)-1])
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrStepIncomplete):
		return ErrStepIncomplete
	case errors.Is(err, domain.ErrCannotGoBack):
		return ErrCannotGoBack
	case errors.Is(err, domain.ErrFlowFinished):
		return ErrFlowFinished
	case errors.Is(err, domain.ErrInvalidStep):
		return ErrInvalidStep
	case errors.Is(err, domain.ErrInvalidTime):
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	default:
		return err
	}
}

func mapSubmitError(err error) error {
	switch {
	case errors.Is(err, create_session.ErrDraftNotFound):
		return ErrDraftNotFound
	case errors.Is(err, create_session.ErrAlreadySubmitted):
		return ErrFlowFinished
	case errors.Is(err, create_session.ErrInvalidStep):
		return ErrInvalidStep
	case errors.Is(err, create_session.ErrIncomplete):
		return ErrStepIncomplete
	case errors.Is(err, create_session.ErrInvalidTimezone):
		return ErrInvalidTimezone
	case errors.Is(err, create_session.ErrSubmissionInProgress):
		return ErrSubmissionInProgress
	case errors.Is(err, create_session.ErrSessionRejected):
		return fmt.Errorf("%w: %v", ErrSessionRejected, err)
	case errors.Is(err, create_session.ErrUpstream):
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	default:
		return fmt.Errorf("%w: Continue - submission error: %v", ErrInternal, err)
	}
}
