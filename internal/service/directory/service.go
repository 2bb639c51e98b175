package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	"github.com/m04kA/SMC-MentorBooking/internal/service/directory/models"
)

// Service сервис списков маркетплейса: пользователи, заявки менторов, каталог и платежи.
// Бэкенд отдает списки целиком, фильтрация и страницы считаются здесь.
type Service struct {
	client MentoringClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client MentoringClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListUsers возвращает страницу пользователей с фильтром по роли и поиском по имени и email
func (s *Service) ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListResponse[models.UserResponse], error) {
	s.logger.Info("ListUsers: role=%q, search=%q, page=%d", req.Role, req.Search, req.Page)

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.logger.Error("ListUsers: failed to get users: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - client error: %v", ErrInternal, err)
	}

	filtered := Filter(users, func(u mentoringapi.User) bool {
		if req.Role != "" && !strings.EqualFold(u.Role, req.Role) {
			return false
		}
		return matchesSearch(req.Search, u.FirstName+" "+u.LastName, u.Email)
	})

	page := Map(Paginate(filtered, req.Page, req.PageSize), models.FromUser)
	s.logger.Info("ListUsers: %d of %d users matched", page.TotalItems, len(users))
	return toListResponse(page), nil
}

// ListMentorApplications возвращает страницу заявок менторов с фильтром по статусу валидации
func (s *Service) ListMentorApplications(ctx context.Context, req *models.ListMentorApplicationsRequest) (*models.ListResponse[models.MentorResponse], error) {
	s.logger.Info("ListMentorApplications: status=%q, search=%q, page=%d", req.Status, req.Search, req.Page)

	mentors, err := s.client.ListMentorApplications(ctx)
	if err != nil {
		s.logger.Error("ListMentorApplications: failed to get mentors: %v", err)
		return nil, fmt.Errorf("%w: ListMentorApplications - client error: %v", ErrInternal, err)
	}

	filtered := Filter(mentors, func(m mentoringapi.Mentor) bool {
		if req.Status != "" && !strings.EqualFold(m.ValidationStatus, req.Status) {
			return false
		}
		return matchesSearch(req.Search, m.FirstName+" "+m.LastName, m.Email)
	})

	page := Map(Paginate(filtered, req.Page, req.PageSize), models.FromMentor)
	return toListResponse(page), nil
}

// DiscoverMentors возвращает страницу каталога менторов с фильтром по экспертизе и максимальной ставке
func (s *Service) DiscoverMentors(ctx context.Context, req *models.DiscoverMentorsRequest) (*models.ListResponse[models.MentorResponse], error) {
	s.logger.Info("DiscoverMentors: expertise=%q, search=%q, page=%d", req.Expertise, req.Search, req.Page)

	if req.MaxRate != nil && *req.MaxRate < 0 {
		return nil, fmt.Errorf("%w: maxRate must not be negative", ErrInvalidInput)
	}

	mentors, err := s.client.ListMentors(ctx)
	if err != nil {
		s.logger.Error("DiscoverMentors: failed to get mentors: %v", err)
		return nil, fmt.Errorf("%w: DiscoverMentors - client error: %v", ErrInternal, err)
	}

	filtered := Filter(mentors, func(m mentoringapi.Mentor) bool {
		if req.Expertise != "" && !hasExpertise(m.Expertise, req.Expertise) {
			return false
		}
		if req.MaxRate != nil && m.HourlyRate > *req.MaxRate {
			return false
		}
		return matchesSearch(req.Search, m.FirstName+" "+m.LastName, m.Title, m.Bio)
	})

	page := Map(Paginate(filtered, req.Page, req.PageSize), models.FromMentor)
	return toListResponse(page), nil
}

// ListPayments возвращает страницу платежей менти с фильтром по статусу и периоду [From, To)
func (s *Service) ListPayments(ctx context.Context, req *models.ListPaymentsRequest) (*models.PaymentListResponse, error) {
	s.logger.Info("ListPayments: mentee=%s, status=%q, page=%d", req.MenteeID, req.Status, req.Page)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	payments, err := s.client.ListPayments(ctx, req.MenteeID)
	if err != nil {
		s.logger.Error("ListPayments: failed to get payments for mentee=%s: %v", req.MenteeID, err)
		return nil, fmt.Errorf("%w: ListPayments - client error: %v", ErrInternal, err)
	}

	filtered := Filter(payments, func(p mentoringapi.Payment) bool {
		if req.Status != "" && !strings.EqualFold(p.Status, req.Status) {
			return false
		}
		if req.From != nil && p.CreatedAt.Before(*req.From) {
			return false
		}
		if req.To != nil && !p.CreatedAt.Before(*req.To) {
			return false
		}
		return true
	})

	var total float64
	for _, p := range filtered {
		total += p.Amount
	}

	page := Map(Paginate(filtered, req.Page, req.PageSize), models.FromPayment)
	return &models.PaymentListResponse{
		ListResponse: *toListResponse(page),
		TotalAmount:  total,
	}, nil
}

// ValidateMentor одобряет или отклоняет заявку ментора. Для отклонения нужна причина.
func (s *Service) ValidateMentor(ctx context.Context, mentorID string, req *models.ValidateMentorRequest) error {
	s.logger.Info("ValidateMentor: mentor=%s, approved=%t", mentorID, req.Approved)

	if mentorID == "" {
		return fmt.Errorf("%w: mentorID is required", ErrInvalidInput)
	}
	if !req.Approved && strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}

	err := s.client.ValidateMentor(ctx, mentorID, mentoringapi.ValidationDecision{
		Approved: req.Approved,
		Reason:   strings.TrimSpace(req.Reason),
	})
	if err != nil {
		switch {
		case errors.Is(err, mentoringapi.ErrMentorNotFound):
			s.logger.Warn("ValidateMentor: mentor=%s not found", mentorID)
			return ErrMentorNotFound
		case errors.Is(err, mentoringapi.ErrRejected):
			s.logger.Warn("ValidateMentor: decision for mentor=%s rejected: %v", mentorID, err)
			return fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			s.logger.Error("ValidateMentor: failed to validate mentor=%s: %v", mentorID, err)
			return fmt.Errorf("%w: ValidateMentor - client error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("ValidateMentor: mentor=%s validated", mentorID)
	return nil
}

func hasExpertise(expertise []string, want string) bool {
	for _, e := range expertise {
		if strings.EqualFold(strings.TrimSpace(e), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

func toListResponse[T any](p Page[T]) *models.ListResponse[T] {
	return &models.ListResponse[T]{
		Items:      p.Items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
