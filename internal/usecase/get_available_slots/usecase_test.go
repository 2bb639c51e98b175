package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
	"github.com/m04kA/SMC-MentorBooking/pkg/txmanager"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// воскресенье, 9 марта 2025
var testNow = time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *draftRepo.MemoryRepository) {
	t.Helper()
	repo := draftRepo.NewMemoryRepository()
	uc := NewUseCase(repo, txmanager.NewLocalManager(), time.UTC, 200, logger.Nop())
	uc.timeProvider = fixedTime{t: testNow}
	return uc, repo
}

func saveDraft(t *testing.T, repo *draftRepo.MemoryRepository, windows []domain.AvailabilityWindow) *domain.BookingDraft {
	t.Helper()
	d := domain.NewBookingDraft("mentee-1")
	d.SetMentor(domain.MentorSummary{ID: "mentor-1", Name: "Ada Lovelace", HourlyRate: 50})
	d.SetAvailability(windows)
	require.NoError(t, repo.Save(context.Background(), d))
	return d
}

func TestExecute_DatesAndSlotsForSelectedDate(t *testing.T) {
	uc, repo := newTestUseCase(t)
	d := saveDraft(t, repo, []domain.AvailabilityWindow{{DayOfWeek: 0, StartHour: 9, EndHour: 11}})
	require.NoError(t, d.SetDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Save(context.Background(), d))

	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	require.NoError(t, err)
	require.Len(t, resp.Dates, domain.DefaultDateWindowDays)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), resp.Dates[0].Date)
	assert.True(t, resp.Dates[0].Available)
	assert.False(t, resp.Dates[1].Available)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Slots)
	require.NotNil(t, resp.Date)
}

func TestExecute_ExplicitDateOverridesSelection(t *testing.T) {
	uc, repo := newTestUseCase(t)
	saveDraft(t, repo, []domain.AvailabilityWindow{{DayOfWeek: 1, StartHour: 18, EndHour: 19}})

	tuesday := time.Date(2025, time.March, 11, 15, 45, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", Date: &tuesday})

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00"}, resp.Slots)
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), *resp.Date)
}

func TestExecute_NoDateNoSlots(t *testing.T) {
	uc, repo := newTestUseCase(t)
	saveDraft(t, repo, nil)

	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	require.NoError(t, err)
	assert.Nil(t, resp.Date)
	assert.Empty(t, resp.Slots)
	for _, d := range resp.Dates {
		assert.False(t, d.Available)
	}
}

func TestExecute_Errors(t *testing.T) {
	uc, repo := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MenteeID: "nobody"})
	assert.ErrorIs(t, err, ErrDraftNotFound)

	d := saveDraft(t, repo, nil)
	d.SetTimezone("Not/AZone")
	require.NoError(t, repo.Save(context.Background(), d))

	_, err = uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestExtendWindow_GrowsNearEnd(t *testing.T) {
	uc, repo := newTestUseCase(t)
	saveDraft(t, repo, nil)

	resp, err := uc.ExtendWindow(context.Background(), &ScrollRequest{
		MenteeID: "mentee-1", Offset: 700, Viewport: 300, Content: 1200,
	})

	require.NoError(t, err)
	assert.True(t, resp.Extended)
	assert.Equal(t, domain.DefaultDateWindowDays+domain.DateWindowStep, resp.WindowDays)
	assert.Len(t, resp.Dates, domain.DefaultDateWindowDays+domain.DateWindowStep)

	stored, err := repo.Get(context.Background(), "mentee-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDateWindowDays+domain.DateWindowStep, stored.DateWindowDays)
}

func TestExtendWindow_FarFromEndKeepsWindow(t *testing.T) {
	uc, repo := newTestUseCase(t)
	saveDraft(t, repo, nil)

	resp, err := uc.ExtendWindow(context.Background(), &ScrollRequest{
		MenteeID: "mentee-1", Offset: 0, Viewport: 300, Content: 1200,
	})

	require.NoError(t, err)
	assert.False(t, resp.Extended)
	assert.Equal(t, domain.DefaultDateWindowDays, resp.WindowDays)
}

func TestExtendWindow_EachTriggerAddsOneStep(t *testing.T) {
	uc, repo := newTestUseCase(t)
	saveDraft(t, repo, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.ExtendWindow(context.Background(), &ScrollRequest{
			MenteeID: "mentee-1", Offset: 900, Viewport: 300, Content: 1200,
		})
		require.NoError(t, err)
	}

	stored, err := repo.Get(context.Background(), "mentee-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDateWindowDays+3*domain.DateWindowStep, stored.DateWindowDays)
}

func TestExtendWindow_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.ExtendWindow(context.Background(), &ScrollRequest{MenteeID: "mentee-1", Offset: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.ExtendWindow(context.Background(), &ScrollRequest{MenteeID: "nobody"})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestIsNearEnd(t *testing.T) {
	assert.True(t, IsNearEnd(800, 200, 1200, 200))
	assert.False(t, IsNearEnd(799, 200, 1200, 200))
	assert.True(t, IsNearEnd(0, 100, 100, 200))
}
