package validate_mentor

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ValidateMentor(ctx context.Context, mentorID string, req *models.ValidateMentorRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
