package start_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	startBooking "github.com/m04kA/SMC-MentorBooking/internal/usecase/start_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingMentorID    = "ID ментора обязателен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMentorNotFound     = "ментор не найден"
	msgInvalidTimezone    = "неизвестный часовой пояс"
)

type Handler struct {
	useCase StartBookingUseCase
	logger  Logger
}

func NewHandler(useCase StartBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/draft
// Открывает мастер бронирования: загружает ментора и расписание, создает черновик заново.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	menteeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/draft - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StartBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/draft - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingMentorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(menteeID))
	if err != nil {
		switch {
		case errors.Is(err, startBooking.ErrMentorNotFound):
			h.logger.Warn("POST /bookings/draft - Mentor not found: mentor_id=%s", req.MentorID)
			handlers.RespondNotFound(w, msgMentorNotFound)

		case errors.Is(err, startBooking.ErrInvalidTimezone):
			h.logger.Warn("POST /bookings/draft - Invalid timezone: %q", req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, startBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/draft - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/draft - Failed to start booking: mentee_id=%s, mentor_id=%s, error=%v",
				menteeID, req.MentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/draft - Booking started: mentee_id=%s, mentor_id=%s, step=%s",
		menteeID, req.MentorID, result.Draft.Step)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
