package models

import (
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	"github.com/m04kA/SMC-MentorBooking/pkg/textfmt"
)

// Заглушки для отсутствующих данных профиля
const (
	PlaceholderBio     = "No bio provided"
	PlaceholderTitle   = "Mentor"
	PlaceholderCountry = "Not specified"
	PlaceholderName    = "Unnamed user"
)

// Request модели

// Pagination номер страницы (с 1) и ее размер
type Pagination struct {
	Page     int `json:"page" validate:"omitempty,min=1"`
	PageSize int `json:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ListUsersRequest запрос списка пользователей (админка)
type ListUsersRequest struct {
	Pagination
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=mentor mentee admin"`
	Search string `json:"search,omitempty"` // По имени и email
}

// ListMentorApplicationsRequest запрос списка заявок менторов (админка)
type ListMentorApplicationsRequest struct {
	Pagination
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Search string `json:"search,omitempty"`
}

// DiscoverMentorsRequest запрос каталога менторов для менти
type DiscoverMentorsRequest struct {
	Pagination
	Expertise string   `json:"expertise,omitempty"`
	MaxRate   *float64 `json:"maxRate,omitempty" validate:"omitempty,gte=0"`
	Search    string   `json:"search,omitempty"` // По имени, должности и био
}

// ListPaymentsRequest запрос истории платежей менти
type ListPaymentsRequest struct {
	Pagination
	MenteeID string     `json:"-"`
	Status   string     `json:"status,omitempty" validate:"omitempty,oneof=pending completed refunded failed"`
	From     *time.Time `json:"from,omitempty"` // Включительно
	To       *time.Time `json:"to,omitempty"`   // Не включительно
}

// ValidateMentorRequest решение по заявке ментора
type ValidateMentorRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty" validate:"max=500"`
}

// Response модели

// ListResponse страница списка
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// PaymentListResponse страница платежей с суммой по всем отфильтрованным
type PaymentListResponse struct {
	ListResponse[PaymentResponse]
	TotalAmount float64 `json:"totalAmount"`
}

// UserResponse пользователь платформы
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Initials  string    `json:"initials"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Picture   string    `json:"picture,omitempty"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// MentorResponse карточка ментора
type MentorResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Initials         string   `json:"initials"`
	Title            string   `json:"title"`
	Bio              string   `json:"bio"`
	Picture          string   `json:"picture,omitempty"`
	HourlyRate       float64  `json:"hourlyRate"`
	Expertise        []string `json:"expertise"`
	Country          string   `json:"country"`
	ValidationStatus string   `json:"validationStatus"`
	Rating           float64  `json:"rating"`
}

// PaymentResponse платеж менти
type PaymentResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	MentorID   string    `json:"mentorId"`
	MentorName string    `json:"mentorName"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Методы конвертации

// FromUser конвертирует пользователя маркетплейса в DTO
func FromUser(u mentoringapi.User) UserResponse {
	name := textfmt.OrPlaceholder(textfmt.FullName(u.FirstName, u.LastName), PlaceholderName)
	return UserResponse{
		ID:        u.ID,
		Name:      name,
		Initials:  textfmt.Initials(textfmt.FullName(u.FirstName, u.LastName)),
		Email:     u.Email,
		Role:      u.Role,
		Picture:   u.Picture,
		Country:   textfmt.OrPlaceholder(u.Country, PlaceholderCountry),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// FromMentor конвертирует ментора маркетплейса в DTO
func FromMentor(m mentoringapi.Mentor) MentorResponse {
	fullName := textfmt.FullName(m.FirstName, m.LastName)
	expertise := m.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return MentorResponse{
		ID:               m.ID,
		Name:             textfmt.OrPlaceholder(fullName, PlaceholderName),
		Initials:         textfmt.Initials(fullName),
		Title:            textfmt.OrPlaceholder(m.Title, PlaceholderTitle),
		Bio:              textfmt.OrPlaceholder(m.Bio, PlaceholderBio),
		Picture:          m.Picture,
		HourlyRate:       m.HourlyRate,
		Expertise:        expertise,
		Country:          textfmt.OrPlaceholder(m.Country, PlaceholderCountry),
		ValidationStatus: m.ValidationStatus,
		Rating:           m.Rating,
	}
}

// FromPayment конвертирует платеж маркетплейса в DTO
func FromPayment(p mentoringapi.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		SessionID:  p.SessionID,
		MentorID:   p.MentorID,
		MentorName: p.MentorName,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}
