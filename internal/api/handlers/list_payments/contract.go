package list_payments

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ListPayments(ctx context.Context, req *models.ListPaymentsRequest) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
