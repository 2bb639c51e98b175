package list_users

import (
	"context"

	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListResponse[models.UserResponse], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
