package model

import "time"

// Session учётные данные сотрудника, привязанные к Telegram-пользователю
type Session struct {
	TelegramID int64     `json:"telegram_id"`
	Token      string    `json:"-"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired проверяет истёк ли срок действия сессии на момент now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
