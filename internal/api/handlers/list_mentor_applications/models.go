package list_mentor_applications

import (
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Query params: status (pending|approved|rejected), search, page, pageSize
func ToServiceRequest(r *http.Request) (*models.ListMentorApplicationsRequest, error) {
	query := r.URL.Query()

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	req := &models.ListMentorApplicationsRequest{
		Pagination: models.Pagination{Page: page, PageSize: pageSize},
		Status:     query.Get("status"),
		Search:     query.Get("search"),
	}
	if err := handlers.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
