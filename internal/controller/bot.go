package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks"
	"github.com/Freeeeeet/hotel_console/internal/controller/handlers"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	authService *service.AuthService,
	notifyTTL time.Duration,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём адаптер для callback handlers
	stateAdapter := state.NewAdapter(stateManager)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(
		authService,
		stateAdapter,
		logger,
		notifyTTL,
	)

	// Команды рисуют те же экраны, что и кнопки
	cmdHandlers := handlers.NewHandlers(
		authService,
		stateManager,
		callbackHandler.Handler,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Вход и навигация
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/whoami", bot.MatchTypeExact, c.handlers.HandleWhoAmI)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Разделы консоли
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/dashboard", bot.MatchTypeExact, c.handlers.HandleDashboard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bookings", bot.MatchTypeExact, c.handlers.HandleBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/complaints", bot.MatchTypeExact, c.handlers.HandleComplaints)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/payments", bot.MatchTypeExact, c.handlers.HandlePayments)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/rooms", bot.MatchTypeExact, c.handlers.HandleRooms)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/newbooking", bot.MatchTypeExact, c.handlers.HandleNewBooking)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/newcomplaint", bot.MatchTypeExact, c.handlers.HandleNewComplaint)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🏨 Главное меню"},
		{Command: "dashboard", Description: "📊 Показатели гостиницы"},
		{Command: "bookings", Description: "📅 Бронирования"},
		{Command: "complaints", Description: "📣 Жалобы"},
		{Command: "payments", Description: "💳 Платежи"},
		{Command: "rooms", Description: "🛏 Номера"},
		{Command: "newbooking", Description: "➕ Новое бронирование"},
		{Command: "newcomplaint", Description: "➕ Новая жалоба"},
		{Command: "whoami", Description: "👤 Текущий пользователь"},
		{Command: "login", Description: "🔑 Войти"},
		{Command: "logout", Description: "🚪 Выйти"},
		{Command: "cancel", Description: "❌ Отменить ввод"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
