package mentoringapi

import "errors"

var (
	// ErrMentorNotFound возвращается, когда ментор не найден
	ErrMentorNotFound = errors.New("mentoringapi client: mentor not found")

	// ErrNotFound возвращается на 404 для остальных ресурсов
	ErrNotFound = errors.New("mentoringapi client: resource not found")

	// ErrRejected возвращается, когда бэкенд отклонил запрос (400, 409, 422)
	ErrRejected = errors.New("mentoringapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сборка запроса)
	ErrInternal = errors.New("mentoringapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mentoringapi client: invalid response")
)
