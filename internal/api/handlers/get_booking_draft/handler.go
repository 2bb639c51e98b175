package get_booking_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
)

const (
	msgNotFound      = "черновик бронирования не найден"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/draft - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Get(r.Context(), menteeID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("GET /bookings/draft - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/draft - Failed to get draft: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/draft - Draft retrieved: mentee_id=%s, step=%s", menteeID, draft.StepName)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
