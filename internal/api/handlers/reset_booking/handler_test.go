package reset_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/confirmation"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Reset(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DraftResponse), args.Error(1)
}

func del() *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/draft", nil)
	return r.WithContext(middleware.WithUserID(r.Context(), "mentee-1"))
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("Reset", mock.Anything, "mentee-1").
		Return(&models.DraftResponse{Step: 1, DurationMinutes: 60}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, del())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":1`)
	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("Reset", mock.Anything, "mentee-1").Return(nil, confirmation.ErrDraftNotFound).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, del())

	assert.Equal(t, http.StatusNotFound, w.Code)
}
