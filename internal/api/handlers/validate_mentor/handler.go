package validate_mentor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReasonRequired     = "для отклонения заявки нужна причина"
	msgMentorNotFound     = "ментор не найден"
	msgRejected           = "маркетплейс отклонил решение по заявке"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/mentors/{mentorId}/validation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentorId"]

	var req ValidateMentorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/mentors/{id}/validation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /admin/mentors/{id}/validation - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ValidateMentor(r.Context(), mentorID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/mentors/{id}/validation - Invalid input: mentor_id=%s, error=%v", mentorID, err)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, directory.ErrMentorNotFound):
			h.logger.Warn("PATCH /admin/mentors/{id}/validation - Mentor not found: mentor_id=%s", mentorID)
			handlers.RespondNotFound(w, msgMentorNotFound)

		case errors.Is(err, directory.ErrRejected):
			h.logger.Warn("PATCH /admin/mentors/{id}/validation - Rejected by marketplace: mentor_id=%s, error=%v", mentorID, err)
			handlers.RespondConflict(w, msgRejected)

		default:
			h.logger.Error("PATCH /admin/mentors/{id}/validation - Failed to validate mentor: mentor_id=%s, error=%v", mentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/mentors/{id}/validation - Mentor validated: mentor_id=%s, approved=%t", mentorID, *req.Approved)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
