package reset_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/confirmation"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgDraftNotFound = "черновик бронирования не найден"
)

type Handler struct {
	service ConfirmationService
	logger  Logger
}

func NewHandler(service ConfirmationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/draft
// Возвращает черновик к начальному состоянию; запись остается до очистки воркером
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/draft - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Reset(r.Context(), menteeID)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrDraftNotFound):
			h.logger.Warn("DELETE /bookings/draft - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("DELETE /bookings/draft - Failed to reset draft: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/draft - Draft reset: mentee_id=%s", menteeID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
