package discover_mentors

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Query params: expertise, maxRate, search, page, pageSize
func ToServiceRequest(r *http.Request) (*models.DiscoverMentorsRequest, error) {
	query := r.URL.Query()

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	req := &models.DiscoverMentorsRequest{
		Pagination: models.Pagination{Page: page, PageSize: pageSize},
		Expertise:  query.Get("expertise"),
		Search:     query.Get("search"),
	}

	if maxRateStr := query.Get("maxRate"); maxRateStr != "" {
		maxRate, err := strconv.ParseFloat(maxRateStr, 64)
		if err != nil {
			return nil, err
		}
		req.MaxRate = &maxRate
	}

	if err := handlers.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
