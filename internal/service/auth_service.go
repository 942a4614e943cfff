package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = fmt.Errorf("%w: session expired", ErrNotAuthenticated)
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrEmptyToken       = errors.New("server returned no token")
)

// SessionStore хранилище сессий сотрудников
type SessionStore interface {
	Save(ctx context.Context, session *model.Session) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Session, error)
	Delete(ctx context.Context, telegramID int64) error
}

// AuthService вход и выход сотрудника, проверка наличия сессии
type AuthService struct {
	sessions SessionStore
	api      *apiclient.Client
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService создаёт сервис; ttl используется, когда токен не содержит exp
func NewAuthService(sessions SessionStore, api *apiclient.Client, ttl time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		api:      api,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Login обменивает логин и пароль на токен и сохраняет сессию
func (s *AuthService) Login(ctx context.Context, telegramID int64, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp == nil || resp.Token == "" {
		return nil, ErrEmptyToken
	}

	claims := readClaims(resp.Token)

	session := &model.Session{
		TelegramID: telegramID,
		Token:      resp.Token,
		Username:   firstNonEmpty(resp.Username, claims.username, username),
		ExpiresAt:  claims.expiresAt,
	}
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = s.now().Add(s.ttl)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("Staff logged in",
		zap.Int64("telegram_id", telegramID),
		zap.String("username", session.Username),
		zap.Time("expires_at", session.ExpiresAt),
	)

	return session, nil
}

// Logout завершает сессию на сервере (ошибка сервера только логируется)
// и всегда удаляет локальную сессию
func (s *AuthService) Logout(ctx context.Context, telegramID int64) error {
	session, err := s.sessions.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Warn("Session lookup failed on logout, clearing local session anyway",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
	}

	if session != nil {
		if err := s.api.WithToken(session.Token).Logout(ctx); err != nil {
			s.logger.Warn("Server logout failed, clearing local session anyway",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err),
			)
		}
	}

	if err := s.sessions.Delete(ctx, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("Staff logged out", zap.Int64("telegram_id", telegramID))
	return nil
}

// Require возвращает действующую сессию или ErrNotAuthenticated.
// Истёкшая сессия удаляется.
func (s *AuthService) Require(ctx context.Context, telegramID int64) (*model.Session, error) {
	session, err := s.sessions.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, telegramID); err != nil {
			s.logger.Warn("Failed to delete expired session", zap.Int64("telegram_id", telegramID), zap.Error(err))
		}
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Client клиент API, подписывающий запросы токеном сессии
func (s *AuthService) Client(session *model.Session) *apiclient.Client {
	return s.api.WithToken(session.Token)
}

type tokenClaims struct {
	username  string
	expiresAt time.Time
}

// readClaims читает exp и username без проверки подписи: ключ есть только у сервера
func readClaims(token string) tokenClaims {
	var out tokenClaims

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return out
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.expiresAt = exp.Time
	}
	if name, ok := claims["username"].(string); ok {
		out.username = name
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
