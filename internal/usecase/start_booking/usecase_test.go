package start_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
	"github.com/m04kA/SMC-MentorBooking/pkg/txmanager"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetMentor(ctx context.Context, mentorID string) (*mentoringapi.Mentor, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mentoringapi.Mentor), args.Error(1)
}

func (m *mockClient) GetAvailability(ctx context.Context, mentorID string) ([]mentoringapi.AvailabilityWindow, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mentoringapi.AvailabilityWindow), args.Error(1)
}

func (m *mockClient) GetSessionTypes(ctx context.Context, mentorID string) ([]mentoringapi.SessionType, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mentoringapi.SessionType), args.Error(1)
}

type nopMetrics struct{}

func (nopMetrics) IncWizardTransition(string, string) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var ada = &mentoringapi.Mentor{
	ID:         "mentor-1",
	FirstName:  "Ada",
	LastName:   "Lovelace",
	Title:      "Staff Engineer",
	HourlyRate: 75,
}

func newTestUseCase(t *testing.T, client *mockClient) (*UseCase, *draftRepo.MemoryRepository) {
	t.Helper()
	repo := draftRepo.NewMemoryRepository()
	uc := NewUseCase(client, repo, txmanager.NewLocalManager(), nopMetrics{}, time.UTC, logger.Nop())
	// воскресенье
	uc.timeProvider = fixedTime{t: time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)}
	return uc, repo
}

func TestExecute_CreatesDraftAndAutoselects(t *testing.T) {
	client := new(mockClient)
	client.On("GetMentor", mock.Anything, "mentor-1").Return(ada, nil)
	client.On("GetAvailability", mock.Anything, "mentor-1").Return([]mentoringapi.AvailabilityWindow{
		{DayOfWeek: 2, StartHour: 14, EndHour: 16},
	}, nil)
	client.On("GetSessionTypes", mock.Anything, "mentor-1").Return([]mentoringapi.SessionType{
		{ID: "st-1", Name: "Intro", DurationMinutes: 30, Price: 20},
	}, nil)

	uc, repo := newTestUseCase(t, client)

	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", MentorID: "mentor-1"})

	require.NoError(t, err)
	client.AssertExpectations(t)

	d := resp.Draft
	require.NotNil(t, d.Mentor)
	assert.Equal(t, "Ada Lovelace", d.Mentor.Name)
	assert.Equal(t, 75.0, d.TotalPrice)
	assert.Equal(t, domain.StepSelectDateTime, d.Step)
	require.NotNil(t, d.SelectedDate)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), *d.SelectedDate)
	assert.Equal(t, "14:00", d.SelectedTime)
	assert.Nil(t, d.Error)
	assert.Len(t, resp.SessionTypes, 1)

	stored, err := repo.Get(context.Background(), "mentee-1")
	require.NoError(t, err)
	assert.Equal(t, "14:00", stored.SelectedTime)
}

func TestExecute_ReplacesExistingDraft(t *testing.T) {
	client := new(mockClient)
	client.On("GetMentor", mock.Anything, "mentor-1").Return(ada, nil)
	client.On("GetAvailability", mock.Anything, "mentor-1").Return([]mentoringapi.AvailabilityWindow{}, nil)
	client.On("GetSessionTypes", mock.Anything, "mentor-1").Return([]mentoringapi.SessionType{}, nil)

	uc, repo := newTestUseCase(t, client)

	old := domain.NewBookingDraft("mentee-1")
	require.NoError(t, old.SetTopic("old topic"))
	old.MarkSubmitted("session-9")
	require.NoError(t, repo.Save(context.Background(), old))

	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", MentorID: "mentor-1"})

	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDateTime, resp.Draft.Step)
	assert.Empty(t, resp.Draft.Topic)
	assert.Nil(t, resp.Draft.SessionID)
	assert.Nil(t, resp.Draft.SelectedDate)
}

func TestExecute_AvailabilityFailureIsNotFatal(t *testing.T) {
	client := new(mockClient)
	client.On("GetMentor", mock.Anything, "mentor-1").Return(ada, nil)
	client.On("GetAvailability", mock.Anything, "mentor-1").Return(nil, mentoringapi.ErrInternal)
	client.On("GetSessionTypes", mock.Anything, "mentor-1").Return(nil, mentoringapi.ErrInvalidResponse)

	uc, _ := newTestUseCase(t, client)

	resp, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", MentorID: "mentor-1"})

	require.NoError(t, err)
	assert.Empty(t, resp.Draft.Availability)
	assert.Nil(t, resp.Draft.SelectedDate)
	require.NotNil(t, resp.Draft.Error)
	assert.Equal(t, msgAvailabilityUnavailable, *resp.Draft.Error)
	assert.Empty(t, resp.SessionTypes)
}

func TestExecute_MentorFailures(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{name: "not found", clientErr: mentoringapi.ErrMentorNotFound, wantErr: ErrMentorNotFound},
		{name: "upstream error", clientErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockClient)
			client.On("GetMentor", mock.Anything, "mentor-1").Return(nil, tt.clientErr)
			client.On("GetAvailability", mock.Anything, "mentor-1").Return([]mentoringapi.AvailabilityWindow{}, nil).Maybe()
			client.On("GetSessionTypes", mock.Anything, "mentor-1").Return([]mentoringapi.SessionType{}, nil).Maybe()

			uc, repo := newTestUseCase(t, client)

			_, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", MentorID: "mentor-1"})

			assert.ErrorIs(t, err, tt.wantErr)
			_, getErr := repo.Get(context.Background(), "mentee-1")
			assert.ErrorIs(t, getErr, draftRepo.ErrDraftNotFound)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(t, new(mockClient))

	_, err := uc.Execute(context.Background(), &Request{MenteeID: "mentee-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MenteeID: "mentee-1", MentorID: "m", Timezone: "Nowhere/Land"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
