package mentoringapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	pathMentors           = "/mentoring/mentors"
	pathMentor            = "/mentoring/mentors/%s"
	pathAvailability      = "/scheduling/mentors/%s/availability"
	pathSessionTypes      = "/scheduling/mentors/%s/session-types"
	pathSessions          = "/scheduling/sessions"
	pathAdminUsers        = "/admin/users"
	pathAdminMentors      = "/admin/mentors"
	pathMentorValidation  = "/admin/mentors/%s/validation"
	pathMenteePayments    = "/payments/mentees/%s"
	headerIdempotencyKey  = "Idempotency-Key"
	headerUserID          = "X-User-ID"
	maxErrorBodyBytes     = 4096
	contentTypeJSON       = "application/json"
	authorizationScheme   = "Bearer "
	operationGetMentor    = "get_mentor"
	operationAvailability = "get_availability"
	operationSessionTypes = "get_session_types"
	operationCreate       = "create_session"
	operationListMentors  = "list_mentors"
	operationListUsers    = "list_users"
	operationListPending  = "list_mentor_applications"
	operationValidate     = "validate_mentor"
	operationListPayments = "list_payments"
)

// Client клиент REST-бэкенда маркетплейса
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента. token и metrics могут быть пустыми.
func NewClient(baseURL, token string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetMentor получает профиль ментора
func (c *Client) GetMentor(ctx context.Context, mentorID string) (*Mentor, error) {
	var mentor Mentor
	err := c.do(ctx, operationGetMentor, http.MethodGet, fmt.Sprintf(pathMentor, url.PathEscape(mentorID)), nil, nil, &mentor)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

// GetAvailability получает еженедельные окна доступности ментора
func (c *Client) GetAvailability(ctx context.Context, mentorID string) ([]AvailabilityWindow, error) {
	windows := make([]AvailabilityWindow, 0)
	err := c.do(ctx, operationAvailability, http.MethodGet, fmt.Sprintf(pathAvailability, url.PathEscape(mentorID)), nil, nil, &windows)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return windows, nil
}

// GetSessionTypes получает типы сессий ментора
func (c *Client) GetSessionTypes(ctx context.Context, mentorID string) ([]SessionType, error) {
	types := make([]SessionType, 0)
	err := c.do(ctx, operationSessionTypes, http.MethodGet, fmt.Sprintf(pathSessionTypes, url.PathEscape(mentorID)), nil, nil, &types)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return types, nil
}

// CreateSession создает сессию от имени менти.
// idempotencyKey передается в заголовке Idempotency-Key, повторный запрос с тем же ключом не создает дубль.
func (c *Client) CreateSession(ctx context.Context, menteeID string, req CreateSessionRequest, idempotencyKey string) (*Session, error) {
	headers := map[string]string{headerUserID: menteeID}
	if idempotencyKey != "" {
		headers[headerIdempotencyKey] = idempotencyKey
	}

	var session Session
	if err := c.do(ctx, operationCreate, http.MethodPost, pathSessions, req, headers, &session); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	if session.ID == "" {
		return nil, fmt.Errorf("%w: empty session id", ErrInvalidResponse)
	}
	return &session, nil
}

// ListMentors получает каталог менторов
func (c *Client) ListMentors(ctx context.Context) ([]Mentor, error) {
	mentors := make([]Mentor, 0)
	if err := c.do(ctx, operationListMentors, http.MethodGet, pathMentors, nil, nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// ListMentorApplications получает менторов вместе со статусом валидации (админка)
func (c *Client) ListMentorApplications(ctx context.Context) ([]Mentor, error) {
	mentors := make([]Mentor, 0)
	if err := c.do(ctx, operationListPending, http.MethodGet, pathAdminMentors, nil, nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// ListUsers получает всех пользователей платформы (админка)
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	if err := c.do(ctx, operationListUsers, http.MethodGet, pathAdminUsers, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ValidateMentor одобряет или отклоняет заявку ментора
func (c *Client) ValidateMentor(ctx context.Context, mentorID string, decision ValidationDecision) error {
	err := c.do(ctx, operationValidate, http.MethodPatch, fmt.Sprintf(pathMentorValidation, url.PathEscape(mentorID)), decision, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return ErrMentorNotFound
	}
	return err
}

// ListPayments получает историю платежей менти
func (c *Client) ListPayments(ctx context.Context, menteeID string) ([]Payment, error) {
	payments := make([]Payment, 0)
	if err := c.do(ctx, operationListPayments, http.MethodGet, fmt.Sprintf(pathMenteePayments, url.PathEscape(menteeID)), nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// do выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, headers map[string]string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(operation, err, time.Since(start))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, mErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.token != "" {
		req.Header.Set("Authorization", authorizationScheme+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("MentoringAPI: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readErrorMessage(resp.Body))
	default:
		msg := readErrorMessage(resp.Body)
		c.log.Warn("MentoringAPI: %s %s unexpected status %d: %s", method, path, resp.StatusCode, msg)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage достает message из ErrorResponse, иначе возвращает тело как есть
func readErrorMessage(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(body))
}
