package list_mentor_applications

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ListMentorApplications(ctx context.Context, req *models.ListMentorApplicationsRequest) (*models.ListResponse[models.MentorResponse], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
