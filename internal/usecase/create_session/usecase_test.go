package create_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/infra/lock"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
	"github.com/m04kA/SMC-MentorBooking/pkg/txmanager"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) CreateSession(ctx context.Context, menteeID string, req mentoringapi.CreateSessionRequest, key string) (*mentoringapi.Session, error) {
	args := m.Called(ctx, menteeID, req, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mentoringapi.Session), args.Error(1)
}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) IncSubmission(outcome string) { m.outcomes = append(m.outcomes, outcome) }
func (m *recordingMetrics) IncWizardTransition(_, _ string) {}

type fixture struct {
	uc      *UseCase
	repo    *draftRepo.MemoryRepository
	client  *mockClient
	locker  *lock.LocalLocker
	metrics *recordingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:    draftRepo.NewMemoryRepository(),
		client:  new(mockClient),
		locker:  lock.NewLocalLocker(),
		metrics: &recordingMetrics{},
	}
	f.uc = NewUseCase(f.repo, f.client, f.locker, txmanager.NewLocalManager(), f.metrics, time.UTC, logger.Nop())
	f.uc.newKey = func() string { return "key-1" }
	return f
}

// reviewDraft сохраняет черновик на шаге подтверждения: 10 марта 2025, 14:00
func (f *fixture) reviewDraft(t *testing.T, tz, topic string) *domain.BookingDraft {
	t.Helper()
	d := domain.NewBookingDraft("mentee-1")
	d.SetMentor(domain.MentorSummary{ID: "mentor-1", Name: "Ada Lovelace", HourlyRate: 50})
	d.SetTimezone(tz)
	require.NoError(t, d.SetDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, d.SetTime("14:00"))
	require.NoError(t, d.SetTopic(topic))
	require.NoError(t, d.SetNotes("bring questions"))
	require.NoError(t, d.Continue())
	require.NoError(t, d.Continue())
	require.Equal(t, domain.StepReview, d.Step)
	require.NoError(t, f.repo.Save(context.Background(), d))
	return d
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	f.reviewDraft(t, "", "Career growth")

	expected := mentoringapi.CreateSessionRequest{
		MentorID:        "mentor-1",
		ScheduledAt:     time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Timezone:        "UTC",
		Topic:           "Career growth",
		Notes:           "bring questions",
		Objectives:      []string{"Career growth"},
	}
	f.client.On("CreateSession", mock.Anything, "mentee-1", expected, "key-1").
		Return(&mentoringapi.Session{ID: "session-42"}, nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	require.NoError(t, err)
	f.client.AssertExpectations(t)
	assert.Equal(t, "session-42", resp.SessionID)
	assert.Equal(t, domain.StepConfirmed, resp.Draft.Step)

	stored, err := f.repo.Get(context.Background(), "mentee-1")
	require.NoError(t, err)
	require.NotNil(t, stored.SessionID)
	assert.Equal(t, "session-42", *stored.SessionID)
	assert.Nil(t, stored.Error)
	assert.Equal(t, []string{outcomeSuccess}, f.metrics.outcomes)
}

func TestExecute_BlankTopicFallsBackAndTimezoneApplied(t *testing.T) {
	f := newFixture(t)
	f.uc.defaultLocation = time.FixedZone("UTC+3", 3*60*60)
	f.reviewDraft(t, "", "   ")

	f.client.On("CreateSession", mock.Anything, "mentee-1", mock.MatchedBy(func(req mentoringapi.CreateSessionRequest) bool {
		// 14:00 в UTC+3 - это 11:00 UTC
		return req.Topic == domain.DefaultTopic &&
			len(req.Objectives) == 0 &&
			req.Timezone == "UTC+3" &&
			req.ScheduledAt.UTC().Equal(time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC)) &&
			req.ScheduledAt.Second() == 0 && req.ScheduledAt.Nanosecond() == 0
	}), "key-1").Return(&mentoringapi.Session{ID: "s-1"}, nil).Once()

	_, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	require.NoError(t, err)
	f.client.AssertExpectations(t)
}

func TestExecute_FailureKeepsReviewStep(t *testing.T) {
	f := newFixture(t)
	before := f.reviewDraft(t, "", "Career growth")

	f.client.On("CreateSession", mock.Anything, "mentee-1", mock.Anything, "key-1").
		Return(nil, mentoringapi.ErrInternal).Once()

	_, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	assert.ErrorIs(t, err, ErrUpstream)

	stored, getErr := f.repo.Get(context.Background(), "mentee-1")
	require.NoError(t, getErr)
	assert.Equal(t, domain.StepReview, stored.Step)
	require.NotNil(t, stored.Error)
	assert.Equal(t, msgSubmissionFailed, *stored.Error)
	assert.Nil(t, stored.SessionID)
	assert.Equal(t, *before.SelectedDate, *stored.SelectedDate)
	assert.Equal(t, before.SelectedTime, stored.SelectedTime)
	assert.Equal(t, before.Topic, stored.Topic)
	assert.Equal(t, []string{outcomeFailed}, f.metrics.outcomes)
}

func TestExecute_RetryReusesIdempotencyKey(t *testing.T) {
	f := newFixture(t)
	f.reviewDraft(t, "", "Career growth")

	calls := 0
	f.uc.newKey = func() string {
		calls++
		return "key-1"
	}

	f.client.On("CreateSession", mock.Anything, "mentee-1", mock.Anything, "key-1").
		Return(nil, mentoringapi.ErrInternal).Once()
	f.client.On("CreateSession", mock.Anything, "mentee-1", mock.Anything, "key-1").
		Return(&mentoringapi.Session{ID: "session-42"}, nil).Once()

	_, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	require.Error(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	require.NoError(t, err)

	assert.Equal(t, "session-42", resp.SessionID)
	assert.Equal(t, 1, calls)
	assert.Nil(t, resp.Draft.Error)
	f.client.AssertExpectations(t)
}

func TestExecute_Rejected(t *testing.T) {
	f := newFixture(t)
	f.reviewDraft(t, "", "")

	f.client.On("CreateSession", mock.Anything, "mentee-1", mock.Anything, "key-1").
		Return(nil, mentoringapi.ErrRejected).Once()

	_, err := f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})

	assert.ErrorIs(t, err, ErrSessionRejected)
	stored, getErr := f.repo.Get(context.Background(), "mentee-1")
	require.NoError(t, getErr)
	require.NotNil(t, stored.Error)
	assert.Equal(t, msgSessionRejected, *stored.Error)
}

func TestExecute_Preconditions(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrDraftNotFound)

	d := domain.NewBookingDraft("mentee-1")
	require.NoError(t, f.repo.Save(context.Background(), d))
	_, err = f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrInvalidStep)

	d = f.reviewDraft(t, "Bad/Zone", "")
	_, err = f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	d.MarkSubmitted("s-1")
	require.NoError(t, f.repo.Save(context.Background(), d))
	_, err = f.uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	f.client.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ConcurrentSubmissionBlocked(t *testing.T) {
	f := newFixture(t)
	f.reviewDraft(t, "", "Career growth")

	err := f.locker.WithLock(context.Background(), "mentee-1", func(ctx context.Context) error {
		_, err := f.uc.Execute(ctx, &Request{MenteeID: "mentee-1"})
		return err
	})

	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	f.client.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
