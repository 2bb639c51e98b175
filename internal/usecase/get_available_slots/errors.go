package get_available_slots

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у менти нет активного черновика
	ErrDraftNotFound = errors.New("get_available_slots: draft not found")

	// ErrInvalidTimezone возвращается, когда часовой пояс черновика неизвестен
	ErrInvalidTimezone = errors.New("get_available_slots: invalid timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
