package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// PageSize строк списка на одной странице
const PageSize = 8

// ListConfig описывает, как рисовать список записей одного типа.
// Callback data строк: "<Prefix>_menu:<id>", страниц: "<Prefix>_page:<n>".
type ListConfig[T any] struct {
	Prefix string
	Title  string
	Empty  string

	RowID    func(T) string
	RowLine  func(T) string
	RowLabel func(T) string
	// Actions кнопки меню открытой строки
	Actions func(T) []models.InlineKeyboardButton
	// Footer дополнительные кнопки под списком
	Footer []models.InlineKeyboardButton
	// Noun склонение названия записи для строки "Всего"
	Noun func(count int) string
}

// ListScreen открытый экран списка
type ListScreen[T any] struct {
	View   *console.ListView[T]
	Config ListConfig[T]

	mu   sync.Mutex
	page int
}

// NewListScreen создаёт экран списка в состоянии Idle
func NewListScreen[T any](cfg ListConfig[T], fetch func(ctx context.Context) ([]T, error)) *ListScreen[T] {
	return &ListScreen[T]{
		View:   console.NewListView(fetch, cfg.RowID),
		Config: cfg,
	}
}

// Close закрывает экран; незавершённые загрузки отбрасываются
func (s *ListScreen[T]) Close() {
	s.View.Close()
}

// Page текущая страница
func (s *ListScreen[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// SetPage переключает страницу
func (s *ListScreen[T]) SetPage(page int) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// Render рисует текущее состояние списка
func (s *ListScreen[T]) Render(hc *HandlerContext) error {
	text, kb := BuildListScreen(s.Config, s.View.Snapshot(), s.Page())
	return hc.Render(text, kb)
}

// Reload показывает загрузку, перечитывает коллекцию и перерисовывает экран
func (s *ListScreen[T]) Reload(hc *HandlerContext) error {
	if err := s.Render(hc); err != nil {
		hc.Handler.Logger.Debug("Failed to render loading state", zap.Error(err))
	}
	if err := s.View.Load(hc.Ctx); err != nil {
		if errors.Is(err, console.ErrDiscarded) {
			return nil
		}
		hc.Handler.Logger.Warn("List load failed",
			zap.String("list", s.Config.Prefix),
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
	return s.Render(hc)
}

// ========================
// Screen lifecycle
// ========================

// OpenList открывает новый экран списка вместо текущего и загружает его
func OpenList[T any](hc *HandlerContext, cfg ListConfig[T], fetch func(ctx context.Context) ([]T, error)) *ListScreen[T] {
	screen := NewListScreen(cfg, fetch)
	hc.SetScreen(screen)
	if err := screen.Reload(hc); err != nil {
		HandleError(hc, err, cfg.Prefix+"_open")
	}
	return screen
}

// CurrentList возвращает открытый экран списка с этим префиксом.
// Кнопка могла остаться от старого экрана или от прошлого запуска бота,
// тогда экран открывается заново.
func CurrentList[T any](hc *HandlerContext, cfg ListConfig[T], fetch func(ctx context.Context) ([]T, error)) *ListScreen[T] {
	if screen, ok := hc.Screen().(*ListScreen[T]); ok && screen.Config.Prefix == cfg.Prefix {
		return screen
	}
	return OpenList(hc, cfg, fetch)
}

// HandleListCallback обрабатывает общие действия списка.
// Возвращает false, если действие относится к конкретному типу записей.
func HandleListCallback[T any](hc *HandlerContext, cfg ListConfig[T], fetch func(ctx context.Context) ([]T, error), action, arg string) bool {
	switch action {
	case "open":
		OpenList(hc, cfg, fetch)
		hc.Answer("")

	case "refresh":
		screen := CurrentList(hc, cfg, fetch)
		screen.View.CloseMenu()
		if err := screen.Reload(hc); err != nil {
			HandleError(hc, err, cfg.Prefix+"_refresh")
			return true
		}
		hc.Answer("🔄 Обновлено")

	case "page":
		page, err := ParseID(arg)
		if err != nil {
			HandleError(hc, err, cfg.Prefix+"_page")
			return true
		}
		screen := CurrentList(hc, cfg, fetch)
		screen.SetPage(int(page))
		screen.View.CloseMenu()
		if err := screen.Render(hc); err != nil {
			HandleError(hc, err, cfg.Prefix+"_page")
			return true
		}
		hc.Answer("")

	case "menu":
		screen := CurrentList(hc, cfg, fetch)
		if _, ok := screen.View.Find(arg); !ok {
			hc.AnswerAlert("❌ Запись не найдена, обновите список")
			return true
		}
		screen.View.ToggleMenu(arg)
		if err := screen.Render(hc); err != nil {
			HandleError(hc, err, cfg.Prefix+"_menu")
			return true
		}
		hc.Answer("")

	default:
		return false
	}
	return true
}

// RunListAction выполняет действие над строкой, затем перечитывает список.
// При ошибке меню строки остаётся открытым, а ошибка показывается в списке.
func RunListAction[T any](
	hc *HandlerContext,
	cfg ListConfig[T],
	fetch func(ctx context.Context) ([]T, error),
	operation string,
	action func(ctx context.Context) error,
	success string,
) {
	screen := CurrentList(hc, cfg, fetch)

	err := screen.View.RunAction(hc.Ctx, action)
	reply, failed := actionReply(err, success)

	switch {
	case failed:
		hc.Handler.Logger.Warn("List action failed",
			zap.String("operation", operation),
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		if renderErr := screen.Render(hc); renderErr != nil {
			hc.Handler.Logger.Debug("Failed to render list", zap.Error(renderErr))
		}
		hc.AnswerAlert(reply)
		return
	case err != nil:
		// Действие выполнено, список перерисует более новая загрузка
		hc.Handler.Logger.Debug("List reload after action discarded",
			zap.String("operation", operation),
			zap.Int64("telegram_id", hc.TelegramID))
		LogAndAnswer(hc, "List action completed: "+operation, reply)
		return
	}

	LogAndAnswer(hc, "List action completed: "+operation, reply)
	if err := screen.Render(hc); err != nil {
		hc.Handler.Logger.Debug("Failed to render list", zap.Error(err))
	}
}

// actionReply текст ответа на нажатие после действия над строкой и признак неудачи.
// ErrDiscarded значит, что действие прошло, а отброшена только перезагрузка списка.
func actionReply(err error, success string) (string, bool) {
	if err == nil || errors.Is(err, console.ErrDiscarded) {
		return success, false
	}
	return ErrorMessage(err), true
}

// ========================
// Builders
// ========================

// BuildListScreen формирует текст и клавиатуру списка для страницы page
func BuildListScreen[T any](cfg ListConfig[T], snap console.ListSnapshot[T], page int) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("<b>" + cfg.Title + "</b>\n\n")

	kb := keyboard.NewBuilder()

	switch snap.Status {
	case console.StatusIdle, console.StatusLoading:
		sb.WriteString("⏳ Загрузка...")
		kb.AddMainMenuButton()
		return sb.String(), kb.Build()

	case console.StatusFailed:
		sb.WriteString(ErrorMessage(snap.Err))
		kb.Row(keyboard.RefreshButton(cfg.Prefix+"_refresh"), keyboard.MainMenuButton())
		return sb.String(), kb.Build()
	}

	if len(snap.Items) == 0 {
		sb.WriteString(cfg.Empty)
	} else {
		totalPages := keyboard.TotalPages(len(snap.Items), PageSize)
		page = keyboard.ClampPage(page, totalPages)
		start, end := keyboard.PageBounds(page, PageSize, len(snap.Items))

		if cfg.Noun != nil {
			fmt.Fprintf(&sb, "Всего: %d %s\n\n", len(snap.Items), cfg.Noun(len(snap.Items)))
		}

		for i, item := range snap.Items[start:end] {
			fmt.Fprintf(&sb, "%d. %s\n", start+i+1, cfg.RowLine(item))

			id := cfg.RowID(item)
			open := snap.MenuOpen && snap.OpenRow == id
			label := cfg.RowLabel(item)
			if open {
				label = "▾ " + label
			}
			kb.Row(keyboard.Button(label, cfg.Prefix+"_menu:"+id))

			if open && cfg.Actions != nil {
				kb.Grid(cfg.Actions(item), 2)
			}
		}

		kb.AddPagination(cfg.Prefix+"_page:", page, totalPages)
	}

	if snap.ActionErr != nil {
		sb.WriteString("\n" + ErrorMessage(snap.ActionErr))
	}

	kb.Row(cfg.Footer...)
	kb.Row(keyboard.RefreshButton(cfg.Prefix+"_refresh"), keyboard.MainMenuButton())

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}
