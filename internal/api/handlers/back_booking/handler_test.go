package back_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard/models"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Back(ctx context.Context, menteeID string) (*models.DraftResponse, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DraftResponse), args.Error(1)
}

func post() *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/draft/back", nil)
	return r.WithContext(middleware.WithUserID(r.Context(), "mentee-1"))
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("Back", mock.Anything, "mentee-1").
		Return(&models.DraftResponse{Step: 1, StepName: "select_date_time"}, nil).Once()

	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, post())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stepName":"select_date_time"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "first step", err: wizard.ErrCannotGoBack, wantCode: http.StatusBadRequest},
		{name: "finished", err: wizard.ErrFlowFinished, wantCode: http.StatusConflict},
		{name: "not found", err: wizard.ErrDraftNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Back", mock.Anything, "mentee-1").Return(nil, tt.err).Once()

			w := httptest.NewRecorder()
			NewHandler(svc, logger.Nop()).Handle(w, post())

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
