package console

import (
	"context"
	"sync"
)

// ListView контроллер экрана со списком записей одного типа.
// Меню действий открыто не более чем у одной строки: хранится один
// идентификатор открытой строки, а не флаг на каждую строку.
type ListView[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context) ([]T, error)
	rowID func(T) string

	status    Status
	items     []T
	err       error
	actionErr error
	openRow   string
	menuOpen  bool

	generation uint64
	closed     bool
}

// ListSnapshot копия состояния списка для отрисовки
type ListSnapshot[T any] struct {
	Status    Status
	Items     []T
	Err       error // ошибка загрузки коллекции
	ActionErr error // ошибка последнего действия над строкой
	OpenRow   string
	MenuOpen  bool
}

// NewListView создаёт контроллер списка в состоянии Idle
func NewListView[T any](fetch func(ctx context.Context) ([]T, error), rowID func(T) string) *ListView[T] {
	return &ListView[T]{
		fetch:  fetch,
		rowID:  rowID,
		status: StatusIdle,
	}
}

// Load загружает коллекцию целиком.
// Если за время запроса экран закрыли или запустили новую загрузку,
// результат отбрасывается и возвращается ErrDiscarded.
func (v *ListView[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrDiscarded
	}
	v.generation++
	gen := v.generation
	v.status = StatusLoading
	v.mu.Unlock()

	items, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || gen != v.generation {
		return ErrDiscarded
	}
	if err != nil {
		v.status = StatusFailed
		v.err = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	v.status = StatusReady
	v.items = items
	v.err = nil
	return nil
}

// Snapshot возвращает копию текущего состояния
func (v *ListView[T]) Snapshot() ListSnapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]T, len(v.items))
	copy(items, v.items)

	return ListSnapshot[T]{
		Status:    v.status,
		Items:     items,
		Err:       v.err,
		ActionErr: v.actionErr,
		OpenRow:   v.openRow,
		MenuOpen:  v.menuOpen,
	}
}

// Find ищет строку по идентификатору среди загруженных
func (v *ListView[T]) Find(id string) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, item := range v.items {
		if v.rowID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ToggleMenu открывает меню строки id, закрывая меню другой строки.
// Повторный вызов для той же строки закрывает меню. Возвращает true, если меню открыто.
func (v *ListView[T]) ToggleMenu(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.menuOpen && v.openRow == id {
		v.openRow = ""
		v.menuOpen = false
		return false
	}
	v.openRow = id
	v.menuOpen = true
	v.actionErr = nil
	return true
}

// CloseMenu сворачивает открытое меню
func (v *ListView[T]) CloseMenu() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.openRow = ""
	v.menuOpen = false
}

// RunAction выполняет изменяющее действие над строкой.
// Успех: полная перезагрузка коллекции, затем меню сворачивается.
// Ошибка: сохраняется для показа, данные и статус Ready не меняются.
func (v *ListView[T]) RunAction(ctx context.Context, action func(ctx context.Context) error) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrDiscarded
	}
	if v.status != StatusReady {
		v.mu.Unlock()
		return ErrNotReady
	}
	v.actionErr = nil
	v.mu.Unlock()

	if err := action(ctx); err != nil {
		v.mu.Lock()
		if !v.closed {
			v.actionErr = err
		}
		v.mu.Unlock()
		return err
	}

	loadErr := v.Load(ctx)
	v.CloseMenu()
	return loadErr
}

// Close отмечает экран закрытым; результаты незавершённых запросов будут отброшены
func (v *ListView[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.generation++
}
