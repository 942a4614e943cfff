package forms

import (
	"context"
	"errors"
	"strconv"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/complaints"
	"go.uber.org/zap"
)

// ComplaintScreen открытая форма создания жалобы
type ComplaintScreen struct {
	inputState
	Form *console.ComplaintForm

	page int
}

// Close закрывает форму
func (s *ComplaintScreen) Close() {
	s.Form.Close()
}

func (s *ComplaintScreen) setPage(page int) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

func (s *ComplaintScreen) currentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *ComplaintScreen) render(hc *common.HandlerContext) {
	s.attach(hc)
	awaiting, inputErr := s.awaitingField()
	text, kb := BuildComplaintForm(s.Form.Snapshot(), s.currentPage(), awaiting, inputErr)
	if err := hc.Render(text, kb); err != nil {
		hc.Handler.Logger.Warn("Failed to render complaint form",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		return
	}
	s.remember(hc)
}

func (s *ComplaintScreen) input(hc *common.HandlerContext, text string) {
	field, _ := s.awaitingField()
	if field == "" {
		endInput(hc)
		s.render(hc)
		return
	}

	value, err := NormalizeInput(field, text)
	if err == nil {
		err = s.Form.Set(field, value)
	}
	if errors.Is(err, console.ErrDiscarded) {
		return
	}
	if err != nil {
		s.finishInput(err)
		s.render(hc)
		return
	}

	s.finishInput(nil)
	endInput(hc)
	s.render(hc)
}

// StartComplaint открывает форму жалобы; bookingID > 0 сразу выбирает бронирование
func StartComplaint(hc *common.HandlerContext, bookingID int64) {
	screen := &ComplaintScreen{}
	screen.Form = console.NewComplaintForm(hc.API, func(ctx context.Context) {
		common.Notify(hc.WithContext(ctx), "✅ Жалоба зарегистрирована")
	})
	hc.SetScreen(screen)
	screen.render(hc)

	if err := screen.Form.Mount(hc.Ctx); err != nil {
		if errors.Is(err, console.ErrDiscarded) {
			return
		}
		hc.Handler.Logger.Warn("Complaint form bookings failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		screen.render(hc)
		return
	}

	if bookingID > 0 {
		if err := screen.Form.Set(console.FieldBookingID, strconv.FormatInt(bookingID, 10)); err != nil {
			hc.Handler.Logger.Info("Preselected booking is not available",
				zap.Int64("booking_id", bookingID),
				zap.Error(err))
		}
		screen.setPage(bookingPage(screen.Form.Snapshot(), bookingID))
	}
	screen.render(hc)
}

// bookingPage страница выбора, на которой находится бронирование
func bookingPage(snap console.ComplaintFormSnapshot, bookingID int64) int {
	for i, b := range snap.Bookings {
		if b.ID == bookingID {
			return i / BookingPickerPageSize
		}
	}
	return 0
}

// HandleComplaintCallback обрабатывает callback формы жалобы ("nc_<action>:<arg>")
func HandleComplaintCallback(hc *common.HandlerContext, action, arg string) {
	if action == "start" {
		var bookingID int64
		if arg != "" {
			id, err := common.ParseID(arg)
			if err != nil {
				common.HandleError(hc, err, "complaint_form_start")
				return
			}
			bookingID = id
		}
		StartComplaint(hc, bookingID)
		hc.Answer("")
		return
	}

	screen, _ := hc.Screen().(*ComplaintScreen)
	if screen == nil {
		hc.AnswerAlert("❌ Форма уже закрыта")
		return
	}

	switch action {
	case "field":
		startInput(hc, &screen.inputState, arg)
		screen.render(hc)
		hc.Answer("")

	case "bk":
		if err := screen.Form.Set(console.FieldBookingID, arg); err != nil {
			if errors.Is(err, console.ErrDiscarded) {
				hc.Answer("")
				return
			}
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}
		screen.render(hc)
		hc.Answer("")

	case "page":
		page, err := common.ParseID(arg)
		if err != nil {
			common.HandleError(hc, err, "complaint_form_page")
			return
		}
		screen.setPage(int(page))
		screen.render(hc)
		hc.Answer("")

	case "submit":
		submitComplaint(hc, screen)

	case "cancel":
		cancelForm(hc)

	default:
		common.HandleError(hc, common.ErrInvalidFormat, "complaint_form_callback")
	}
}

func submitComplaint(hc *common.HandlerContext, screen *ComplaintScreen) {
	endInput(hc)
	screen.await("")

	err := screen.Form.Submit(hc.Ctx)
	switch {
	case err == nil:
		common.LogAndAnswer(hc, "Complaint created", "✅ Готово")
		complaints.ShowList(hc)
	case errors.Is(err, console.ErrDiscarded):
		hc.Answer("")
	case errors.Is(err, console.ErrSubmitting):
		hc.AnswerAlert(common.ErrorMessage(err))
	default:
		hc.Handler.Logger.Warn("Complaint submit failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		screen.render(hc)
		hc.Answer("❌ Жалоба не создана")
	}
}
