package start_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	startBooking "github.com/m04kA/SMC-MentorBooking/internal/usecase/start_booking"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *startBooking.Request) (*startBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*startBooking.Response), args.Error(1)
}

func newRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/draft", strings.NewReader(body))
	return r.WithContext(middleware.WithUserID(r.Context(), "mentee-1"))
}

func TestHandle_Success(t *testing.T) {
	uc := new(mockUseCase)
	draft := domain.NewBookingDraft("mentee-1")
	draft.SetMentor(domain.MentorSummary{ID: "mentor-1", Name: "Ada Lovelace", HourlyRate: 50})

	uc.On("Execute", mock.Anything, &startBooking.Request{MenteeID: "mentee-1", MentorID: "mentor-1", Timezone: "Europe/Berlin"}).
		Return(&startBooking.Response{
			Draft:        draft,
			SessionTypes: []domain.SessionType{{ID: "st-1", Name: "Intro", DurationMinutes: 60, Price: 50}},
		}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, newRequest(`{"mentorId":"mentor-1","timezone":"Europe/Berlin"}`))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp StartBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mentor-1", resp.Draft.Mentor.ID)
	assert.Equal(t, 50.0, resp.Draft.TotalPrice)
	require.Len(t, resp.SessionTypes, 1)
	assert.Equal(t, "Intro", resp.SessionTypes[0].Name)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "broken json", body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing mentor", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "mentor not found", body: `{"mentorId":"m"}`, ucErr: startBooking.ErrMentorNotFound, wantCode: http.StatusNotFound},
		{name: "bad timezone", body: `{"mentorId":"m","timezone":"x"}`, ucErr: startBooking.ErrInvalidTimezone, wantCode: http.StatusBadRequest},
		{name: "internal", body: `{"mentorId":"m"}`, ucErr: startBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()
			}

			w := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(w, newRequest(tt.body))

			assert.Equal(t, tt.wantCode, w.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/draft", strings.NewReader(`{"mentorId":"m"}`))

	NewHandler(new(mockUseCase), logger.Nop()).Handle(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
