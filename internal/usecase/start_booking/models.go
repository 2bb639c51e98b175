package start_booking

import "github.com/m04kA/SMC-MentorBooking/internal/domain"

// Request модель запроса на открытие мастера бронирования
type Request struct {
	MenteeID string
	MentorID string
	Timezone string // IANA, пусто - часовой пояс сервиса по умолчанию
}

// Response модель ответа
type Response struct {
	Draft        *domain.BookingDraft
	SessionTypes []domain.SessionType // Пусто, если типы сессий не загрузились
}
