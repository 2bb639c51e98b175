package start_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	"github.com/m04kA/SMC-MentorBooking/pkg/textfmt"
)

// UseCase use case открытия мастера бронирования
type UseCase struct {
	client          MentoringClient
	draftRepo       DraftRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	defaultLocation *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client MentoringClient,
	draftRepo DraftRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	defaultLocation *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:          client,
		draftRepo:       draftRepo,
		txManager:       txManager,
		metrics:         metrics,
		defaultLocation: defaultLocation,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute загружает ментора, его расписание и типы сессий параллельно,
// создает новый черновик менти (старый заменяется) и выполняет автовыбор шага 1
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartBooking: mentee=%s, mentor=%s", req.MenteeID, req.MentorID)

	// 1. Валидация входных данных
	if req.MenteeID == "" || req.MentorID == "" {
		return nil, fmt.Errorf("%w: menteeID and mentorID are required", ErrInvalidInput)
	}
	loc, err := domain.ResolveLocation(req.Timezone, uc.defaultLocation)
	if err != nil {
		uc.logger.Warn("StartBooking: invalid timezone %q", req.Timezone)
		return nil, ErrInvalidTimezone
	}

	// 2. Три независимых запроса к маркетплейсу
	var (
		mentor       *mentoringapi.Mentor
		windows      []mentoringapi.AvailabilityWindow
		sessionTypes []mentoringapi.SessionType
		availErr     error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := uc.client.GetMentor(gctx, req.MentorID)
		if err != nil {
			return err
		}
		mentor = m
		return nil
	})
	g.Go(func() error {
		w, err := uc.client.GetAvailability(gctx, req.MentorID)
		if err != nil {
			availErr = err
			return nil
		}
		windows = w
		return nil
	})
	g.Go(func() error {
		st, err := uc.client.GetSessionTypes(gctx, req.MentorID)
		if err != nil {
			uc.logger.Warn("StartBooking: failed to get session types for mentor=%s: %v", req.MentorID, err)
			return nil
		}
		sessionTypes = st
		return nil
	})

	// Без ментора бронировать нечего
	if err := g.Wait(); err != nil {
		if errors.Is(err, mentoringapi.ErrMentorNotFound) {
			uc.logger.Warn("StartBooking: mentor=%s not found", req.MentorID)
			return nil, ErrMentorNotFound
		}
		uc.logger.Error("StartBooking: failed to get mentor=%s: %v", req.MentorID, err)
		return nil, fmt.Errorf("%w: failed to get mentor: %v", ErrInternal, err)
	}

	// 3. Собираем черновик
	draft := domain.NewBookingDraft(req.MenteeID)
	draft.SetMentor(toMentorSummary(mentor))
	draft.SetTimezone(req.Timezone)
	if availErr != nil {
		uc.logger.Error("StartBooking: failed to get availability for mentor=%s: %v", req.MentorID, availErr)
		draft.MarkFailed(msgAvailabilityUnavailable)
	} else {
		draft.SetAvailability(toDomainWindows(windows))
	}

	draft.EnterStep1(uc.timeProvider.Now().In(loc))

	// 4. Сохраняем
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.draftRepo.Save(txCtx, draft)
	})
	if err != nil {
		uc.logger.Error("StartBooking: failed to save draft for mentee=%s: %v", req.MenteeID, err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	uc.metrics.IncWizardTransition("none", draft.Step.String())
	uc.logger.Info("StartBooking: draft created for mentee=%s, windows=%d, session_types=%d",
		req.MenteeID, len(draft.Availability), len(sessionTypes))

	return &Response{
		Draft:        draft,
		SessionTypes: toDomainSessionTypes(sessionTypes),
	}, nil
}

func toMentorSummary(m *mentoringapi.Mentor) domain.MentorSummary {
	return domain.MentorSummary{
		ID:         m.ID,
		Name:       textfmt.FullName(m.FirstName, m.LastName),
		Title:      m.Title,
		Picture:    m.Picture,
		HourlyRate: m.HourlyRate,
	}
}

func toDomainWindows(windows []mentoringapi.AvailabilityWindow) []domain.AvailabilityWindow {
	result := make([]domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		result = append(result, domain.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		})
	}
	return result
}

func toDomainSessionTypes(types []mentoringapi.SessionType) []domain.SessionType {
	result := make([]domain.SessionType, 0, len(types))
	for _, st := range types {
		result = append(result, domain.SessionType{
			ID:              st.ID,
			Name:            st.Name,
			DurationMinutes: st.DurationMinutes,
			Price:           st.Price,
		})
	}
	return result
}
