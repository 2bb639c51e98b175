package lock

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrLockNotAcquired возвращается, когда блокировка уже занята
	ErrLockNotAcquired = errors.New("lock: not acquired")

	// ErrLockUnavailable возвращается, когда хранилище блокировок недоступно
	ErrLockUnavailable = errors.New("lock: backend unavailable")
)

// LocalLocker блокировка на ключ в пределах процесса.
// Не ждет освобождения: занятый ключ сразу дает ErrLockNotAcquired, как и RedisLocker.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalLocker создает блокировку для одного инстанса
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

// WithLock выполняет fn, удерживая блокировку key
func (l *LocalLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	if _, busy := l.held[key]; busy {
		l.mu.Unlock()
		return ErrLockNotAcquired
	}
	l.held[key] = struct{}{}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}()

	return fn(ctx)
}
