package draftexpiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
)

type countingRepo struct {
	mu     sync.Mutex
	calls  int
	before []time.Time
	err    error
}

func (r *countingRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.before = append(r.before, before)
	return 1, r.err
}

func (r *countingRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestRunOnce_UsesTTLCutoff(t *testing.T) {
	repo := &countingRepo{}
	w := New(repo, 2*time.Hour, time.Minute, logger.Nop())
	now := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	removed := w.RunOnce(context.Background())

	assert.Equal(t, int64(1), removed)
	require.Len(t, repo.before, 1)
	assert.Equal(t, now.Add(-2*time.Hour), repo.before[0])
}

func TestRunOnce_ErrorIsLoggedNotReturned(t *testing.T) {
	repo := &countingRepo{err: errors.New("db down")}
	w := New(repo, time.Hour, time.Minute, logger.Nop())

	assert.Zero(t, w.RunOnce(context.Background()))
}

func TestRun_RunsAtStartAndStopsOnCancel(t *testing.T) {
	repo := &countingRepo{}
	w := New(repo, time.Hour, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestRunOnce_WithMemoryRepository(t *testing.T) {
	repo := draftRepo.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), domain.NewBookingDraft("mentee-1")))

	w := New(repo, time.Hour, time.Minute, logger.Nop())
	w.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.Equal(t, int64(1), w.RunOnce(context.Background()))

	_, err := repo.Get(context.Background(), "mentee-1")
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
}
