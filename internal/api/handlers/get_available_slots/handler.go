package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-MentorBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgInvalidTimezone    = "неизвестный часовой пояс"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/draft/dates
// Query params: date (optional, YYYY-MM-DD) - по умолчанию слоты выбранной в черновике даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/draft/dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(menteeID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings/draft/dates - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "GET /bookings/draft/dates", menteeID, err)
		return
	}

	h.logger.Info("GET /bookings/draft/dates - Dates retrieved: mentee_id=%s, window_days=%d, slots_count=%d",
		menteeID, result.WindowDays, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleScroll POST /api/v1/bookings/draft/dates/scroll
// Расширяет ленту дат, если она прокручена почти до конца
func (h *Handler) HandleScroll(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/draft/dates/scroll - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ScrollRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/draft/dates/scroll - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/draft/dates/scroll - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExtendWindow(r.Context(), req.ToUseCaseRequest(menteeID))
	if err != nil {
		h.respondError(w, "POST /bookings/draft/dates/scroll", menteeID, err)
		return
	}

	h.logger.Info("POST /bookings/draft/dates/scroll - mentee_id=%s, extended=%t, window_days=%d",
		menteeID, result.Extended, result.WindowDays)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route, menteeID string, err error) {
	switch {
	case errors.Is(err, getAvailableSlots.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: mentee_id=%s", route, menteeID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, getAvailableSlots.ErrInvalidTimezone):
		h.logger.Warn("%s - Invalid timezone: mentee_id=%s", route, menteeID)
		handlers.RespondBadRequest(w, msgInvalidTimezone)

	case errors.Is(err, getAvailableSlots.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: mentee_id=%s, error=%v", route, menteeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Failed: mentee_id=%s, error=%v", route, menteeID, err)
		handlers.RespondInternalError(w)
	}
}
