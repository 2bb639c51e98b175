package back_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgDraftNotFound   = "черновик бронирования не найден"
	msgCannotGoBack    = "это первый шаг"
	msgFlowFinished    = "бронирование уже завершено"
	msgInvalidTimezone = "неизвестный часовой пояс"
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

// Handle POST /api/v1/bookings/draft/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/draft/back - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Back(r.Context(), menteeID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("POST /bookings/draft/back - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrCannotGoBack):
			h.logger.Warn("POST /bookings/draft/back - Already on first step: mentee_id=%s", menteeID)
			handlers.RespondBadRequest(w, msgCannotGoBack)

		case errors.Is(err, wizard.ErrFlowFinished):
			h.logger.Warn("POST /bookings/draft/back - Flow finished: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgFlowFinished)

		case errors.Is(err, wizard.ErrInvalidTimezone):
			h.logger.Warn("POST /bookings/draft/back - Invalid timezone: mentee_id=%s", menteeID)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		default:
			h.logger.Error("POST /bookings/draft/back - Failed to go back: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/draft/back - mentee_id=%s, step=%s", menteeID, draft.StepName)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
