package mentoringapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает длительность и исход вызовов бэкенда
type MetricsRecorder interface {
	ObserveUpstream(operation string, err error, duration time.Duration)
}
