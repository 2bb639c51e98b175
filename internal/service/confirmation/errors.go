package confirmation

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у менти нет черновика
	ErrDraftNotFound = errors.New("draft not found")

	// ErrNotConfirmed возвращается, если сессия по черновику еще не создана
	ErrNotConfirmed = errors.New("booking is not confirmed yet")

	// ErrInvalidTimezone возвращается для неизвестного часового пояса
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal service error")
)
