package dashboard

import (
	"bytes"
	"context"
	"errors"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Screen открытый дашборд
type Screen struct {
	View *console.DetailView[model.Metrics]
}

// Close закрывает дашборд; незавершённая загрузка отбрасывается
func (s *Screen) Close() {
	s.View.Close()
}

// Show открывает дашборд вместо текущего экрана.
// Дашборд отправляется фотографией, поэтому прежнее сообщение экрана удаляется.
func Show(hc *common.HandlerContext) {
	screen := &Screen{
		View: console.NewDetailView(func(ctx context.Context) (*model.Metrics, error) {
			return hc.API.GetMetrics(ctx)
		}, keyboard.MainMenuData),
	}
	hc.SetScreen(screen)

	if hc.MessageID != 0 {
		if err := hc.DeleteMessage(); err != nil {
			hc.Handler.Logger.Debug("Failed to delete screen message", zap.Error(err))
		}
	}
	if err := hc.Render(title+"\n\n⏳ Загрузка...", nil); err != nil {
		hc.Handler.Logger.Debug("Failed to render loading state", zap.Error(err))
	}

	if err := screen.View.Load(hc.Ctx); err != nil {
		if errors.Is(err, console.ErrDiscarded) {
			return
		}
		hc.Handler.Logger.Warn("Metrics load failed",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}

	render(hc, screen.View.Snapshot())
}

// HandleCallback обрабатывает callback дашборда ("dash_<action>")
func HandleCallback(hc *common.HandlerContext, action, _ string) {
	switch action {
	case "open", "refresh":
		Show(hc)
		hc.Answer("")
	default:
		common.HandleError(hc, common.ErrInvalidFormat, "dashboard_callback")
	}
}

func render(hc *common.HandlerContext, snap console.DetailSnapshot[model.Metrics]) {
	switch snap.Status {
	case console.StatusReady:
		err := sendPhoto(hc, *snap.Item)
		if err == nil {
			return
		}
		hc.Handler.Logger.Warn("Failed to send dashboard image, falling back to text", zap.Error(err))
		renderText(hc, BuildCaption(*snap.Item))
	case console.StatusNotFound:
		renderText(hc, title+"\n\n🔍 Показатели недоступны.")
	default:
		renderText(hc, title+"\n\n"+common.ErrorMessage(snap.Err))
	}
}

func renderText(hc *common.HandlerContext, text string) {
	if err := hc.Render(text, BuildKeyboard()); err != nil {
		common.HandleError(hc, err, "dashboard_render")
	}
}

// sendPhoto заменяет сообщение загрузки фотографией с подписью
func sendPhoto(hc *common.HandlerContext, metrics model.Metrics) error {
	image, err := common.GenerateOccupancyImage(metrics)
	if err != nil {
		return err
	}

	msg, err := hc.Bot.SendPhoto(hc.Ctx, &bot.SendPhotoParams{
		ChatID: hc.ChatID,
		Photo: &models.InputFileUpload{
			Filename: "dashboard.png",
			Data:     bytes.NewReader(image),
		},
		Caption:     BuildCaption(metrics),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: BuildKeyboard(),
	})
	if err != nil {
		return err
	}

	if hc.MessageID != 0 {
		if err := hc.DeleteMessage(); err != nil {
			hc.Handler.Logger.Debug("Failed to delete loading message", zap.Error(err))
		}
	}
	hc.MessageID = msg.ID
	return nil
}
