package select_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
	"github.com/m04kA/SMC-MentorBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SelectSlot(ctx context.Context, menteeID string, date *time.Time, timeOfDay *string) (*models.DraftResponse, error) {
	args := m.Called(ctx, menteeID, date, timeOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DraftResponse), args.Error(1)
}

func put(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/draft/slot", strings.NewReader(body))
	return r.WithContext(middleware.WithUserID(r.Context(), "mentee-1"))
}

var wednesday = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

func TestHandle_DateOnly(t *testing.T) {
	svc := new(mockService)
	svc.On("SelectSlot", mock.Anything, "mentee-1", &wednesday, (*string)(nil)).
		Return(&models.DraftResponse{SelectedDate: ptr.Ptr("2025-03-12"), SelectedTime: "14:00"}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, put(`{"date":"2025-03-12"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selectedTime":"14:00"`)
	svc.AssertExpectations(t)
}

func TestHandle_DateAndTimeInOneCall(t *testing.T) {
	svc := new(mockService)
	svc.On("SelectSlot", mock.Anything, "mentee-1", &wednesday, ptr.Ptr("15:00")).
		Return(&models.DraftResponse{SelectedDate: ptr.Ptr("2025-03-12"), SelectedTime: "15:00"}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, put(`{"date":"2025-03-12","time":"15:00"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selectedTime":"15:00"`)
	svc.AssertNumberOfCalls(t, "SelectSlot", 1)
}

func TestHandle_RejectedTimeWithDate(t *testing.T) {
	svc := new(mockService)
	svc.On("SelectSlot", mock.Anything, "mentee-1", &wednesday, ptr.Ptr("09:00")).
		Return(nil, wizard.ErrSlotUnavailable).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, put(`{"date":"2025-03-12","time":"09:00"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	svc.AssertNumberOfCalls(t, "SelectSlot", 1)
}

func TestHandle_ClearTime(t *testing.T) {
	svc := new(mockService)
	svc.On("SelectSlot", mock.Anything, "mentee-1", (*time.Time)(nil), ptr.Ptr("")).
		Return(&models.DraftResponse{SelectedDate: ptr.Ptr("2025-03-12")}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, put(`{"time":""}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCode   int
	}{
		{name: "empty selection", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "bad date", body: `{"date":"12/03/2025"}`, wantCode: http.StatusBadRequest},
		{name: "date unavailable", body: `{"date":"2025-03-12"}`, serviceErr: wizard.ErrDateUnavailable, wantCode: http.StatusBadRequest},
		{name: "slot unavailable", body: `{"time":"23:00"}`, serviceErr: wizard.ErrSlotUnavailable, wantCode: http.StatusConflict},
		{name: "no date yet", body: `{"time":"10:00"}`, serviceErr: wizard.ErrDateNotSelected, wantCode: http.StatusBadRequest},
		{name: "bad time", body: `{"time":"9am"}`, serviceErr: wizard.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "finished", body: `{"date":"2025-03-12"}`, serviceErr: wizard.ErrFlowFinished, wantCode: http.StatusConflict},
		{name: "not found", body: `{"time":"10:00"}`, serviceErr: wizard.ErrDraftNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.serviceErr != nil {
				svc.On("SelectSlot", mock.Anything, "mentee-1", mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()
			}

			w := httptest.NewRecorder()
			NewHandler(svc, logger.Nop()).Handle(w, put(tt.body))

			assert.Equal(t, tt.wantCode, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
