package health

import "context"

// CheckFunc проверка доступности зависимости
type CheckFunc func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
