package list_mentor_applications

import (
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

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

// Handle GET /api/v1/admin/mentors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/mentors - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListMentorApplications(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /admin/mentors - Failed to list mentor applications: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/mentors - Applications retrieved: status=%q, total=%d", serviceReq.Status, result.TotalItems)
	handlers.RespondJSON(w, http.StatusOK, result)
}
