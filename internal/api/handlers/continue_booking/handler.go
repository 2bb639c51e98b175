package continue_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
)

const (
	msgMissingUserID        = "отсутствует ID пользователя"
	msgDraftNotFound        = "черновик бронирования не найден"
	msgStepIncomplete       = "выберите дату и время, чтобы продолжить"
	msgFlowFinished         = "бронирование уже завершено"
	msgInvalidStep          = "действие недоступно на текущем шаге"
	msgInvalidTimezone      = "неизвестный часовой пояс"
	msgSubmissionInProgress = "бронирование уже отправляется"
	msgSessionRejected      = "ментора нельзя забронировать на выбранное время"
	msgSubmissionFailed     = "не удалось забронировать сессию, попробуйте еще раз"
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

// Handle POST /api/v1/bookings/draft/continue
// На шаге подтверждения создает сессию у маркетплейса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/draft/continue - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Continue(r.Context(), menteeID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("POST /bookings/draft/continue - Draft not found: mentee_id=%s", menteeID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrStepIncomplete):
			h.logger.Warn("POST /bookings/draft/continue - Step incomplete: mentee_id=%s", menteeID)
			handlers.RespondBadRequest(w, msgStepIncomplete)

		case errors.Is(err, wizard.ErrFlowFinished):
			h.logger.Warn("POST /bookings/draft/continue - Flow finished: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgFlowFinished)

		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("POST /bookings/draft/continue - Invalid step: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, wizard.ErrInvalidTimezone):
			h.logger.Warn("POST /bookings/draft/continue - Invalid timezone: mentee_id=%s", menteeID)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, wizard.ErrSubmissionInProgress):
			h.logger.Warn("POST /bookings/draft/continue - Submission in progress: mentee_id=%s", menteeID)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, wizard.ErrSessionRejected):
			h.logger.Warn("POST /bookings/draft/continue - Session rejected: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondConflict(w, msgSessionRejected)

		case errors.Is(err, wizard.ErrSubmissionFailed):
			h.logger.Error("POST /bookings/draft/continue - Submission failed: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /bookings/draft/continue - Failed to continue: mentee_id=%s, error=%v", menteeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/draft/continue - mentee_id=%s, step=%s", menteeID, draft.StepName)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
