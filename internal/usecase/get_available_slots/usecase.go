package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
)

// UseCase use case ленты дат и слотов (Availability Deriver поверх черновика менти)
type UseCase struct {
	draftRepo       DraftRepository
	txManager       TransactionManager
	defaultLocation *time.Location
	scrollThreshold int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// scrollThreshold - расстояние до конца ленты (px), при котором она расширяется.
func NewUseCase(
	draftRepo DraftRepository,
	txManager TransactionManager,
	defaultLocation *time.Location,
	scrollThreshold int,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:       draftRepo,
		txManager:       txManager,
		defaultLocation: defaultLocation,
		scrollThreshold: scrollThreshold,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает ленту дат черновика и слоты для запрошенной (или выбранной) даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: mentee=%s", req.MenteeID)

	if req.MenteeID == "" {
		return nil, fmt.Errorf("%w: menteeID is required", ErrInvalidInput)
	}

	draft, err := uc.loadDraft(ctx, req.MenteeID)
	if err != nil {
		return nil, err
	}

	resp, err := uc.buildResponse(draft, req.Date)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: mentee=%s, dates=%d, slots=%d", req.MenteeID, len(resp.Dates), len(resp.Slots))
	return resp, nil
}

// ExtendWindow расширяет ленту дат на domain.DateWindowStep, если она прокручена близко к концу.
// Каждый такой вызов добавляет ровно один шаг, верхней границы нет.
func (uc *UseCase) ExtendWindow(ctx context.Context, req *ScrollRequest) (*Response, error) {
	if req.MenteeID == "" {
		return nil, fmt.Errorf("%w: menteeID is required", ErrInvalidInput)
	}
	if req.Offset < 0 || req.Viewport < 0 || req.Content < 0 {
		return nil, fmt.Errorf("%w: scroll position must not be negative", ErrInvalidInput)
	}

	var (
		draft    *domain.BookingDraft
		extended bool
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		draft, err = uc.loadDraft(txCtx, req.MenteeID)
		if err != nil {
			return err
		}

		if !IsNearEnd(req.Offset, req.Viewport, req.Content, uc.scrollThreshold) {
			return nil
		}

		draft.GrowDateWindow()
		extended = true

		if err := uc.draftRepo.Save(txCtx, draft); err != nil {
			uc.logger.Error("ExtendWindow: failed to save draft for mentee=%s: %v", req.MenteeID, err)
			return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if extended {
		uc.logger.Info("ExtendWindow: mentee=%s, window extended to %d days", req.MenteeID, draft.DateWindowDays)
	}

	resp, err := uc.buildResponse(draft, nil)
	if err != nil {
		return nil, err
	}
	resp.Extended = extended
	return resp, nil
}

// IsNearEnd сообщает, что до конца ленты осталось не больше threshold пикселей
func IsNearEnd(offset, viewport, content, threshold int) bool {
	return content-(offset+viewport) <= threshold
}

func (uc *UseCase) loadDraft(ctx context.Context, menteeID string) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.Get(ctx, menteeID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("GetAvailableSlots: draft for mentee=%s not found", menteeID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get draft for mentee=%s: %v", menteeID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}
	return draft, nil
}

func (uc *UseCase) buildResponse(draft *domain.BookingDraft, date *time.Time) (*Response, error) {
	loc, err := domain.ResolveLocation(draft.Timezone, uc.defaultLocation)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: mentee=%s has invalid timezone %q", draft.MenteeID, draft.Timezone)
		return nil, ErrInvalidTimezone
	}

	now := uc.timeProvider.Now().In(loc)
	candidates := domain.GenerateCandidateDates(now, draft.DateWindowDays)

	dates := make([]CandidateDate, 0, len(candidates))
	for _, d := range candidates {
		dates = append(dates, CandidateDate{
			Date:      d,
			Available: domain.HasWindow(draft.Availability, d),
		})
	}

	resp := &Response{
		Dates:        dates,
		WindowDays:   draft.DateWindowDays,
		SelectedTime: draft.SelectedTime,
		Slots:        []string{},
	}

	target := draft.SelectedDate
	if date != nil {
		day := domain.DateOnly(*date)
		target = &day
	}
	if target != nil {
		resp.Date = target
		resp.Slots = domain.SlotsForDate(draft.Availability, *target)
	}

	return resp, nil
}
