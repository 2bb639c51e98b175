package discover_mentors

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

type DirectoryService interface {
	DiscoverMentors(ctx context.Context, req *models.DiscoverMentorsRequest) (*models.ListResponse[models.MentorResponse], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
