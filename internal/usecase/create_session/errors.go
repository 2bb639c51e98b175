package create_session

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у менти нет черновика
	ErrDraftNotFound = errors.New("create_session: draft not found")

	// ErrInvalidStep возвращается, если черновик не на шаге подтверждения
	ErrInvalidStep = errors.New("create_session: draft is not on the review step")

	// ErrAlreadySubmitted возвращается, если сессия по черновику уже создана
	ErrAlreadySubmitted = errors.New("create_session: session already created")

	// ErrIncomplete возвращается, если не выбраны ментор, дата или время
	ErrIncomplete = errors.New("create_session: draft is incomplete")

	// ErrInvalidTimezone возвращается для неизвестного часового пояса
	ErrInvalidTimezone = errors.New("create_session: invalid timezone")

	// ErrSubmissionInProgress возвращается, если черновик уже отправляется
	ErrSubmissionInProgress = errors.New("create_session: submission in progress")

	// ErrSessionRejected возвращается, если маркетплейс отклонил запрос
	ErrSessionRejected = errors.New("create_session: session request rejected")

	// ErrUpstream возвращается, если маркетплейс недоступен или ответил ошибкой
	ErrUpstream = errors.New("create_session: marketplace unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_session: internal error")
)

// Сообщения об ошибке, которые сохраняются в черновике и видны менти
const (
	msgSessionRejected  = "The mentor cannot be booked at the selected time"
	msgSubmissionFailed = "Failed to book the session, please try again"
)

// Значения метки outcome для метрики отправок
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)
