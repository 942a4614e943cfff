package keyboard

import "github.com/go-telegram/bot/models"

// Builder собирает клавиатуру экрана консоли ряд за рядом.
// Пустые ряды пропускаются: Telegram не принимает клавиатуру с пустым рядом.
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Button кнопка с callback-данными
func Button(text, data string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: data}
}

// Row добавляет ряд из переданных кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	return b.AddRows([][]models.InlineKeyboardButton{buttons})
}

// Grid раскладывает кнопки по perRow в ряд (номера комнат, справочники)
func (b *Builder) Grid(buttons []models.InlineKeyboardButton, perRow int) *Builder {
	return b.AddRows(Chunk(buttons, perRow))
}

// AddRows добавляет готовые ряды
func (b *Builder) AddRows(rows [][]models.InlineKeyboardButton) *Builder {
	for _, row := range rows {
		if len(row) > 0 {
			b.rows = append(b.rows, row)
		}
	}
	return b
}

// Build отдаёт разметку. Без рядов это пустая клавиатура, а не nil:
// при редактировании сообщения старые кнопки должны сняться.
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	rows := b.rows
	if rows == nil {
		rows = [][]models.InlineKeyboardButton{}
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
