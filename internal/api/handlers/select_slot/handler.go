package select_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
	"github.com/m04kA/SMC-MentorBooking/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgDateUnavailable    = "на выбранную дату нет свободного времени"
	msgDateNotSelected    = "сначала выберите дату"
	msgSlotUnavailable    = "выбранный временной слот недоступен"
	msgInvalidStep        = "выбор даты и времени доступен только на первом шаге"
	msgFlowFinished       = "бронирование уже завершено"
	msgInvalidTimezone    = "неизвестный часовой пояс"
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

// Handle PUT /api/v1/bookings/draft/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/draft/slot - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/draft/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("PUT /bookings/draft/slot - Invalid selection: %v", err)
		if errors.Is(err, errEmptySelection) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Дата и время применяются вместе: отклоненное время не сохраняет и новую дату
	draft, err := h.service.SelectSlot(r.Context(), menteeID, date, req.Time)
	if err != nil {
		h.respondError(w, menteeID, err)
		return
	}

	h.logger.Info("PUT /bookings/draft/slot - Slot selected: mentee_id=%s, date=%s, time=%q",
		menteeID, ptr.Value(draft.SelectedDate), draft.SelectedTime)
	handlers.RespondJSON(w, http.StatusOK, draft)
}

func (h *Handler) respondError(w http.ResponseWriter, menteeID string, err error) {
	switch {
	case errors.Is(err, wizard.ErrDraftNotFound):
		h.logger.Warn("PUT /bookings/draft/slot - Draft not found: mentee_id=%s", menteeID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, wizard.ErrDateUnavailable):
		h.logger.Warn("PUT /bookings/draft/slot - Date unavailable: mentee_id=%s", menteeID)
		handlers.RespondBadRequest(w, msgDateUnavailable)

	case errors.Is(err, wizard.ErrDateNotSelected):
		h.logger.Warn("PUT /bookings/draft/slot - Date not selected: mentee_id=%s", menteeID)
		handlers.RespondBadRequest(w, msgDateNotSelected)

	case errors.Is(err, wizard.ErrSlotUnavailable):
		h.logger.Warn("PUT /bookings/draft/slot - Slot unavailable: mentee_id=%s", menteeID)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, wizard.ErrInvalidInput):
		h.logger.Warn("PUT /bookings/draft/slot - Invalid time: mentee_id=%s, error=%v", menteeID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, wizard.ErrInvalidStep):
		h.logger.Warn("PUT /bookings/draft/slot - Wrong step: mentee_id=%s", menteeID)
		handlers.RespondConflict(w, msgInvalidStep)

	case errors.Is(err, wizard.ErrFlowFinished):
		h.logger.Warn("PUT /bookings/draft/slot - Flow finished: mentee_id=%s", menteeID)
		handlers.RespondConflict(w, msgFlowFinished)

	case errors.Is(err, wizard.ErrInvalidTimezone):
		h.logger.Warn("PUT /bookings/draft/slot - Invalid timezone: mentee_id=%s", menteeID)
		handlers.RespondBadRequest(w, msgInvalidTimezone)

	default:
		h.logger.Error("PUT /bookings/draft/slot - Failed to select slot: mentee_id=%s, error=%v", menteeID, err)
		handlers.RespondInternalError(w)
	}
}
