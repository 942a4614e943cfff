package console

import (
	"context"
	"sync"
)

// DetailView контроллер карточки одной записи (только чтение)
type DetailView[T any] struct {
	mu        sync.Mutex
	fetch     func(ctx context.Context) (*T, error)
	backRoute string

	status Status
	item   *T
	err    error

	generation uint64
	closed     bool
}

// DetailSnapshot копия состояния карточки
type DetailSnapshot[T any] struct {
	Status Status
	Item   *T
	Err    error
}

// NewDetailView создаёт карточку; backRoute - маршрут списка-владельца
func NewDetailView[T any](fetch func(ctx context.Context) (*T, error), backRoute string) *DetailView[T] {
	return &DetailView[T]{
		fetch:     fetch,
		backRoute: backRoute,
		status:    StatusLoading,
	}
}

// Load загружает запись. Пустой ответ без ошибки переводит карточку в NotFound.
func (v *DetailView[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrDiscarded
	}
	v.generation++
	gen := v.generation
	v.status = StatusLoading
	v.mu.Unlock()

	item, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || gen != v.generation {
		return ErrDiscarded
	}
	switch {
	case err != nil:
		v.status = StatusFailed
		v.err = err
		v.item = nil
		return err
	case item == nil:
		v.status = StatusNotFound
		v.err = nil
		v.item = nil
	default:
		v.status = StatusReady
		v.err = nil
		v.item = item
	}
	return nil
}

func (v *DetailView[T]) Snapshot() DetailSnapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return DetailSnapshot[T]{Status: v.status, Item: v.item, Err: v.err}
}

// Back маршрут возврата к списку
func (v *DetailView[T]) Back() string {
	return v.backRoute
}

func (v *DetailView[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.generation++
}
