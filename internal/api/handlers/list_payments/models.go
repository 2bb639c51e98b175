package list_payments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Query params: status, from, to (YYYY-MM-DD, to не включительно), page, pageSize
func ToServiceRequest(r *http.Request, menteeID string) (*models.ListPaymentsRequest, error) {
	query := r.URL.Query()

	page, err := handlers.QueryInt(r, "page", 0)
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	req := &models.ListPaymentsRequest{
		Pagination: models.Pagination{Page: page, PageSize: pageSize},
		MenteeID:   menteeID,
		Status:     query.Get("status"),
	}

	if req.From, err = parseDate(query.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = parseDate(query.Get("to")); err != nil {
		return nil, err
	}

	if err := handlers.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
