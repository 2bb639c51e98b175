package wizard

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у менти нет черновика
	ErrDraftNotFound = errors.New("draft not found")

	// ErrStepIncomplete возвращается, когда условие текущего шага не выполнено
	ErrStepIncomplete = errors.New("wizard step is incomplete")

	// ErrCannotGoBack возвращается при попытке вернуться с первого шага
	ErrCannotGoBack = errors.New("cannot go back from the first step")

	// ErrFlowFinished возвращается при изменении завершенного черновика
	ErrFlowFinished = errors.New("booking flow is already finished")

	// ErrInvalidStep возвращается, когда действие недоступно на текущем шаге
	ErrInvalidStep = errors.New("action is not allowed on the current step")

	// ErrDateUnavailable возвращается, если на дату нет окон или она вне ленты
	ErrDateUnavailable = errors.New("date is not available")

	// ErrDateNotSelected возвращается при выборе времени без даты
	ErrDateNotSelected = errors.New("date is not selected")

	// ErrSlotUnavailable возвращается, если время не входит в слоты выбранной даты
	ErrSlotUnavailable = errors.New("time slot is not available")

	// ErrInvalidTimezone возвращается для неизвестного часового пояса
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrSubmissionInProgress возвращается, если черновик уже отправляется
	ErrSubmissionInProgress = errors.New("submission in progress")

	// ErrSessionRejected возвращается, если маркетплейс отклонил создание сессии
	ErrSessionRejected = errors.New("session request rejected")

	// ErrSubmissionFailed возвращается, если сессию не удалось создать
	ErrSubmissionFailed = errors.New("session submission failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal service error")
)
