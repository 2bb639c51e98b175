package create_session

import "github.com/m04kA/SMC-MentorBooking/internal/domain"

// Request модель запроса на отправку черновика
type Request struct {
	MenteeID string
}

// Response модель ответа
type Response struct {
	SessionID string
	Draft     *domain.BookingDraft
}
