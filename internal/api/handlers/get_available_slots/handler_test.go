package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-MentorBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func (m *mockUseCase) ExtendWindow(ctx context.Context, req *getAvailableSlots.ScrollRequest) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), "mentee-1"))
}

var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestHandle_WithDate(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{MenteeID: "mentee-1", Date: &monday}).
		Return(&getAvailableSlots.Response{
			Dates: []getAvailableSlots.CandidateDate{
				{Date: monday, Available: true},
				{Date: monday.AddDate(0, 0, 1)},
			},
			WindowDays: 30,
			Date:       &monday,
			Slots:      []string{"09:00", "10:00"},
		}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/draft/dates?date=2025-03-10", nil)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []CandidateDate{
		{Date: "2025-03-10", Weekday: "Mon", Available: true},
		{Date: "2025-03-11", Weekday: "Tue", Available: false},
	}, resp.Dates)
	require.NotNil(t, resp.Date)
	assert.Equal(t, "2025-03-10", *resp.Date)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Slots)
	uc.AssertExpectations(t)
}

func TestHandle_NoDateReturnsEmptySlots(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{MenteeID: "mentee-1"}).
		Return(&getAvailableSlots.Response{WindowDays: 30}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/draft/dates", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
	assert.Contains(t, w.Body.String(), `"date":null`)
}

func TestHandle_InvalidDate(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(new(mockUseCase), logger.Nop()).Handle(w, withUser(httptest.NewRequest(http.MethodGet, "/?date=10.03.2025", nil)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_DraftNotFound(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrDraftNotFound).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, withUser(httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScroll(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ExtendWindow", mock.Anything, &getAvailableSlots.ScrollRequest{MenteeID: "mentee-1", Offset: 1700, Viewport: 300, Content: 2100}).
		Return(&getAvailableSlots.Response{WindowDays: 60, Extended: true}, nil).Once()

	body := strings.NewReader(`{"offset":1700,"viewport":300,"content":2100}`)
	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).HandleScroll(w, withUser(httptest.NewRequest(http.MethodPost, "/", body)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Extended)
	assert.Equal(t, 60, resp.WindowDays)
	uc.AssertExpectations(t)
}

func TestHandleScroll_NegativeOffset(t *testing.T) {
	body := strings.NewReader(`{"offset":-1,"viewport":300,"content":2100}`)
	w := httptest.NewRecorder()
	NewHandler(new(mockUseCase), logger.Nop()).HandleScroll(w, withUser(httptest.NewRequest(http.MethodPost, "/", body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
