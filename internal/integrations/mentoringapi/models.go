package mentoringapi

import "time"

// Mentor профиль ментора из каталога
type Mentor struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Email            string   `json:"email"`
	Title            string   `json:"title"`
	Bio              string   `json:"bio"`
	Picture          string   `json:"picture"`
	HourlyRate       float64  `json:"hourly_rate"`
	Expertise        []string `json:"expertise"`
	Country          string   `json:"country"`
	ValidationStatus string   `json:"validation_status"` // pending, approved, rejected
	Rating           float64  `json:"rating"`
}

// AvailabilityWindow еженедельное окно доступности (day_of_week: 0=понедельник..6=воскресенье)
type AvailabilityWindow struct {
	DayOfWeek int `json:"day_of_week"`
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// SessionType тип сессии, который предлагает ментор
type SessionType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// CreateSessionRequest тело запроса на создание сессии
type CreateSessionRequest struct {
	MentorID        string    `json:"mentor_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Timezone        string    `json:"timezone"`
	Topic           string    `json:"topic"`
	Notes           string    `json:"notes"`
	Objectives      []string  `json:"objectives"`
}

// Session созданная сессия
type Session struct {
	ID          string    `json:"id"`
	MentorID    string    `json:"mentor_id"`
	MenteeID    string    `json:"mentee_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

// User пользователь платформы (ментор, менти или администратор)
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // mentor, mentee, admin
	Picture   string    `json:"picture"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidationDecision решение администратора по заявке ментора
type ValidationDecision struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

// Payment платеж менти
type Payment struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	MentorID   string    `json:"mentor_id"`
	MentorName string    `json:"mentor_name"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"` // pending, completed, refunded, failed
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
