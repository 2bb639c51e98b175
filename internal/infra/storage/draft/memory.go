package draft

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
)

// MemoryRepository хранит черновики в памяти процесса.
// Подходит для одного инстанса, черновики теряются при рестарте.
type MemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.BookingDraft
	now    func() time.Time
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		drafts: make(map[string]*domain.BookingDraft),
		now:    time.Now,
	}
}

// Get возвращает копию черновика менти
func (r *MemoryRepository) Get(_ context.Context, menteeID string) (*domain.BookingDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drafts[menteeID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d.Clone(), nil
}

// Save сохраняет копию черновика
func (r *MemoryRepository) Save(_ context.Context, draft *domain.BookingDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if existing, ok := r.drafts[draft.MenteeID]; ok {
		draft.CreatedAt = existing.CreatedAt
	} else {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	r.drafts[draft.MenteeID] = draft.Clone()
	return nil
}

// Delete удаляет черновик менти
func (r *MemoryRepository) Delete(_ context.Context, menteeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[menteeID]; !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, menteeID)
	return nil
}

// DeleteExpired удаляет черновики, не обновлявшиеся с момента before
func (r *MemoryRepository) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, d := range r.drafts {
		if d.UpdatedAt.Before(before) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed, nil
}
