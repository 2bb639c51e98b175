package get_confirmation

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
	msgNotConfirmed  = "бронирование еще не подтверждено"
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

// Handle GET /api/v1/bookings/draft/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/draft/confirmation - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	summary, err := h.service.Summary(r.Context(), menteeID)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrDraftNotFound):
			h.logger.Warn("GET /bookings/draft/confirmation - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, confirmation.ErrNotConfirmed):
			h.logger.Warn("GET /bookings/draft/confirmation - Not confirmed: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgNotConfirmed)

		default:
			h.logger.Error("GET /bookings/draft/confirmation - Failed to build summary: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/draft/confirmation - mentee_id=%s, session_id=%s", menteeID, summary.SessionID)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
