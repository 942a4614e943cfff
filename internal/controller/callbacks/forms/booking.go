package forms

import (
	"context"
	"errors"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/bookings"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// BookingScreen открытая форма создания бронирования
type BookingScreen struct {
	inputState
	Form *console.BookingForm
}

// Close закрывает форму; ответы незавершённых запросов отбрасываются
func (s *BookingScreen) Close() {
	s.Form.Close()
}

func (s *BookingScreen) render(hc *common.HandlerContext) {
	s.attach(hc)
	awaiting, inputErr := s.awaitingField()
	text, kb := BuildBookingForm(s.Form.Snapshot(), awaiting, inputErr)
	if err := hc.Render(text, kb); err != nil {
		hc.Handler.Logger.Warn("Failed to render booking form",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		return
	}
	s.remember(hc)
}

func (s *BookingScreen) input(hc *common.HandlerContext, text string) {
	field, _ := s.awaitingField()
	if field == "" {
		endInput(hc)
		s.render(hc)
		return
	}

	value, err := NormalizeInput(field, text)
	if err == nil {
		err = s.Form.Set(hc.Ctx, field, value)
	}
	if errors.Is(err, console.ErrDiscarded) {
		return
	}
	if isInputError(err) {
		s.finishInput(err)
		s.render(hc)
		return
	}

	s.finishInput(nil)
	endInput(hc)
	s.render(hc)
}

// StartBooking открывает форму бронирования вместо текущего экрана
func StartBooking(hc *common.HandlerContext) {
	screen := &BookingScreen{}
	screen.Form = console.NewBookingForm(hc.API, func(ctx context.Context) {
		common.Notify(hc.WithContext(ctx), "✅ Бронирование создано")
	})
	hc.SetScreen(screen)
	screen.render(hc)

	if err := screen.Form.Mount(hc.Ctx); err != nil {
		if errors.Is(err, console.ErrDiscarded) {
			return
		}
		hc.Handler.Logger.Warn("Booking form lookups failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
	screen.render(hc)
}

// currentBooking открытая форма бронирования или nil, если кнопка от закрытой формы
func currentBooking(hc *common.HandlerContext) *BookingScreen {
	screen, _ := hc.Screen().(*BookingScreen)
	return screen
}

// HandleBookingCallback обрабатывает callback формы бронирования ("nb_<action>:<arg>")
func HandleBookingCallback(hc *common.HandlerContext, action, arg string) {
	if action == "start" {
		StartBooking(hc)
		hc.Answer("")
		return
	}

	screen := currentBooking(hc)
	if screen == nil {
		hc.AnswerAlert("❌ Форма уже закрыта")
		return
	}

	switch action {
	case "field":
		startInput(hc, &screen.inputState, arg)
		screen.render(hc)
		hc.Answer("")

	case "cat":
		setAndRender(hc, screen, console.FieldCategoryCode, arg)

	case "room":
		setAndRender(hc, screen, console.FieldRoomNumber, arg)

	case "pay":
		setAndRender(hc, screen, console.FieldPaymentMethodCode, arg)

	case "bed":
		if _, err := screen.Form.Toggle(console.FieldBabyBed); err != nil {
			common.HandleError(hc, err, "booking_form_toggle")
			return
		}
		screen.render(hc)
		hc.Answer("")

	case "submit":
		submitBooking(hc, screen)

	case "cancel":
		cancelForm(hc)

	default:
		common.HandleError(hc, common.ErrInvalidFormat, "booking_form_callback")
	}
}

func setAndRender(hc *common.HandlerContext, screen *BookingScreen, field, value string) {
	err := screen.Form.Set(hc.Ctx, field, value)
	switch {
	case errors.Is(err, console.ErrDiscarded):
		hc.Answer("")
		return
	case errors.Is(err, console.ErrIllegalChoice):
		screen.render(hc)
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	// Ошибка загрузки свободных номеров показывается в самой форме
	screen.render(hc)
	hc.Answer("")
}

func submitBooking(hc *common.HandlerContext, screen *BookingScreen) {
	endInput(hc)
	screen.await("")

	err := screen.Form.Submit(hc.Ctx)
	switch {
	case err == nil:
		common.LogAndAnswer(hc, "Booking created", "✅ Готово")
		bookings.ShowList(hc)
	case errors.Is(err, console.ErrDiscarded):
		hc.Answer("")
	case errors.Is(err, console.ErrSubmitting):
		hc.AnswerAlert(common.ErrorMessage(err))
	default:
		hc.Handler.Logger.Warn("Booking submit failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		screen.render(hc)
		hc.Answer("❌ Бронирование не создано")
	}
}

// isInputError ошибки, при которых поле нужно ввести заново
func isInputError(err error) bool {
	return errors.Is(err, common.ErrInvalidDate) ||
		errors.Is(err, common.ErrInvalidDateTime) ||
		errors.Is(err, console.ErrIllegalChoice)
}

// cancelForm закрывает форму и возвращает в главное меню
func cancelForm(hc *common.HandlerContext) {
	hc.ClearState()
	common.ShowMainMenu(hc)
	hc.Answer("Отменено")
}
