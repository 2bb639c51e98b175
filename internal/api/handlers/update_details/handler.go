package update_details

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTooLong            = "тема не длиннее 200 символов, заметки не длиннее 2000"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgInvalidTimezone    = "неизвестный часовой пояс"
	msgFlowFinished       = "бронирование уже завершено"
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

// Handle PUT /api/v1/bookings/draft/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/draft/details - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/draft/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /bookings/draft/details - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgTooLong)
		return
	}

	draft, err := h.service.UpdateDetails(r.Context(), menteeID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("PUT /bookings/draft/details - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrInvalidTimezone):
			h.logger.Warn("PUT /bookings/draft/details - Invalid timezone: mentee_id=%s", menteeID)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/draft/details - Invalid input: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondBadRequest(w, msgTooLong)

		case errors.Is(err, wizard.ErrFlowFinished):
			h.logger.Warn("PUT /bookings/draft/details - Flow finished: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgFlowFinished)

		default:
			h.logger.Error("PUT /bookings/draft/details - Failed to update details: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/draft/details - Details updated: mentee_id=%s", menteeID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
