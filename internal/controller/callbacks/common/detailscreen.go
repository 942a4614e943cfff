package common

import (
	"context"
	"errors"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// DetailConfig описывает карточку записи одного типа
type DetailConfig[T any] struct {
	Prefix   string
	Title    string
	NotFound string
	// BackData callback списка, которому принадлежит карточка
	BackData string

	Body    func(T) string
	Actions func(T) [][]models.InlineKeyboardButton
}

// DetailScreen открытая карточка
type DetailScreen[T any] struct {
	View   *console.DetailView[T]
	Config DetailConfig[T]
}

// Close закрывает карточку; незавершённая загрузка отбрасывается
func (s *DetailScreen[T]) Close() {
	s.View.Close()
}

// Render рисует текущее состояние карточки
func (s *DetailScreen[T]) Render(hc *HandlerContext) error {
	text, kb := BuildDetailScreen(s.Config, s.View.Snapshot(), s.View.Back())
	return hc.Render(text, kb)
}

// OpenDetail открывает карточку вместо текущего экрана и загружает запись
func OpenDetail[T any](hc *HandlerContext, cfg DetailConfig[T], fetch func(ctx context.Context) (*T, error)) *DetailScreen[T] {
	screen := &DetailScreen[T]{
		View:   console.NewDetailView(fetch, cfg.BackData),
		Config: cfg,
	}
	hc.SetScreen(screen)

	if err := screen.Render(hc); err != nil {
		hc.Handler.Logger.Debug("Failed to render loading state", zap.Error(err))
	}
	if err := screen.View.Load(hc.Ctx); err != nil && !errors.Is(err, console.ErrDiscarded) {
		hc.Handler.Logger.Warn("Detail load failed",
			zap.String("detail", cfg.Prefix),
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
	if err := screen.Render(hc); err != nil {
		HandleError(hc, err, cfg.Prefix+"_view")
	}
	return screen
}

// BuildDetailScreen формирует текст и клавиатуру карточки
func BuildDetailScreen[T any](cfg DetailConfig[T], snap console.DetailSnapshot[T], backData string) (string, *models.InlineKeyboardMarkup) {
	text := "<b>" + cfg.Title + "</b>\n\n"
	kb := keyboard.NewBuilder()

	switch snap.Status {
	case console.StatusLoading, console.StatusIdle:
		text += "⏳ Загрузка..."
	case console.StatusFailed:
		text += ErrorMessage(snap.Err)
	case console.StatusNotFound:
		text += cfg.NotFound
	case console.StatusReady:
		text += cfg.Body(*snap.Item)
		if cfg.Actions != nil {
			kb.AddRows(cfg.Actions(*snap.Item))
		}
	}

	kb.Row(keyboard.BackButton(backData), keyboard.MainMenuButton())
	return text, kb.Build()
}
