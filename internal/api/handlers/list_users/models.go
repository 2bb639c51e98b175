package list_users

import (
	"net/http"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Query params: role, search, page, pageSize (все опциональны)
func ToServiceRequest(r *http.Request) (*models.ListUsersRequest, error) {
	query := r.URL.Query()

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	req := &models.ListUsersRequest{
		Pagination: models.Pagination{Page: page, PageSize: pageSize},
		Role:       query.Get("role"),
		Search:     query.Get("search"),
	}
	if err := handlers.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
