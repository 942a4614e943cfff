package forms

import (
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ClearValue ответ, очищающий поле
const ClearValue = "-"

// Форматы, в которых принимаются даты
var (
	dateLayouts     = []string{"2006-01-02", "02.01.2006"}
	dateTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "02.01.2006 15:04"}
)

// NormalizeDate приводит дату к виду ГГГГ-ММ-ДД
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", common.ErrInvalidDate
}

// NormalizeDateTime приводит дату со временем к виду ГГГГ-ММ-ДДTЧЧ:ММ
func NormalizeDateTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02T15:04"), nil
		}
	}
	return "", common.ErrInvalidDateTime
}

// NormalizeInput проверяет введённое значение поля.
// ClearValue превращается в пустую строку, что очищает поле.
func NormalizeInput(field, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == ClearValue {
		return "", nil
	}

	switch field {
	case console.FieldStartDate, console.FieldEndDate:
		return NormalizeDate(text)
	case console.FieldCheckIn, console.FieldCheckOut:
		return NormalizeDateTime(text)
	default:
		return text, nil
	}
}

// Prompt подсказка для ввода поля
func Prompt(field string) string {
	switch field {
	case console.FieldStartDate, console.FieldEndDate:
		return "✏️ Введите дату в формате ГГГГ-ММ-ДД, например 2025-06-01"
	case console.FieldCheckIn, console.FieldCheckOut:
		return "✏️ Введите дату и время в формате ГГГГ-ММ-ДД ЧЧ:ММ, например 2025-06-01 14:00"
	default:
		return "✏️ Введите значение поля «" + formatting.FieldLabel(field) + "»"
	}
}

// inputState поле, которое ждёт текстового ввода, и сообщение, в котором нарисована форма
type inputState struct {
	mu        sync.Mutex
	messageID int
	awaiting  string
	inputErr  error
}

func (s *inputState) await(field string) {
	s.mu.Lock()
	s.awaiting = field
	s.inputErr = nil
	s.mu.Unlock()
}

func (s *inputState) awaitingField() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting, s.inputErr
}

func (s *inputState) finishInput(err error) {
	s.mu.Lock()
	if err == nil {
		s.awaiting = ""
	}
	s.inputErr = err
	s.mu.Unlock()
}

// attach направляет отрисовку в сообщение формы
func (s *inputState) attach(hc *common.HandlerContext) {
	s.mu.Lock()
	if hc.MessageID == 0 {
		hc.MessageID = s.messageID
	}
	s.mu.Unlock()
}

func (s *inputState) remember(hc *common.HandlerContext) {
	s.mu.Lock()
	s.messageID = hc.MessageID
	s.mu.Unlock()
}

// fieldScreen форма, принимающая текстовый ввод
type fieldScreen interface {
	callbacktypes.Screen
	input(hc *common.HandlerContext, text string)
}

// HandleFieldInput принимает текст для поля открытой формы.
// Сообщение пользователя удаляется, форма перерисовывается на месте.
func HandleFieldInput(hc *common.HandlerContext, msg *models.Message) {
	screen, ok := hc.Screen().(fieldScreen)
	if !ok {
		hc.SetState(callbacktypes.UserState(state.StateNone))
		if err := hc.SendMessage("❌ Форма уже закрыта. Откройте её заново из /start", nil); err != nil {
			hc.Handler.Logger.Warn("Failed to send message", zap.Error(err))
		}
		return
	}

	if _, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	}); err != nil {
		hc.Handler.Logger.Debug("Failed to delete input message", zap.Error(err))
	}

	screen.input(hc, msg.Text)
}

// startInput переводит пользователя в режим ввода поля
func startInput(hc *common.HandlerContext, s *inputState, field string) {
	s.await(field)
	hc.SetState(callbacktypes.UserState(state.StateFormInput))
}

// endInput возвращает пользователя из режима ввода, форма остаётся открытой
func endInput(hc *common.HandlerContext) {
	hc.SetState(callbacktypes.UserState(state.StateNone))
}
