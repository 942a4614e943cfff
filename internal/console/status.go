// Package console содержит контроллеры экранов консоли администратора:
// список с меню действий, карточку записи и формы создания.
// Пакет не зависит от способа отображения (Telegram, терминал, web).
package console

import "errors"

// Status состояние загрузки экрана
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

var (
	// ErrDiscarded результат пришёл после закрытия экрана или был вытеснен более новым запросом
	ErrDiscarded = errors.New("result discarded")
	// ErrNotReady действие над списком, который ещё не загружен
	ErrNotReady = errors.New("view is not ready")
	// ErrIllegalChoice значение не входит в предложенный список вариантов
	ErrIllegalChoice = errors.New("value is not among offered choices")
	// ErrSubmitting форма уже отправляется
	ErrSubmitting = errors.New("form is already being submitted")
)
