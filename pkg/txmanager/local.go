package txmanager

import (
	"context"
	"sync"
)

type localTxKey struct{}

// LocalManager сериализует функции внутри процесса.
// Используется вместе с хранилищем в памяти, где нет транзакций БД.
type LocalManager struct {
	mu sync.Mutex
}

// NewLocalManager создает менеджер для хранилища в памяти
func NewLocalManager() *LocalManager {
	return &LocalManager{}
}

// Do выполняет fn под общим мьютексом
func (m *LocalManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// Вложенный вызов уже держит мьютекс
	if ctx.Value(localTxKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, localTxKey{}, struct{}{}))
}

// DoSerializable то же, что Do: исполнение и так последовательное
func (m *LocalManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly то же, что Do
func (m *LocalManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
