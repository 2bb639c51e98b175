package start_booking

import "errors"

var (
	// ErrMentorNotFound возвращается, когда ментор не найден
	ErrMentorNotFound = errors.New("start_booking: mentor not found")

	// ErrInvalidTimezone возвращается для неизвестного часового пояса
	ErrInvalidTimezone = errors.New("start_booking: invalid timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_booking: internal error")
)

// Сообщение, которое видит менти, если расписание ментора не загрузилось
const msgAvailabilityUnavailable = "Failed to load mentor availability"
