package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/Freeeeeet/hotel_console/internal/repository/base"
)

// SessionRepository хранит токены сотрудников по Telegram ID
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(db base.DB) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(db)}
}

// Save создаёт или заменяет сессию пользователя
func (r *SessionRepository) Save(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO console_sessions (telegram_id, token, username, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE
		SET token = EXCLUDED.token,
		    username = EXCLUDED.username,
		    expires_at = EXCLUDED.expires_at,
		    created_at = NOW()
		RETURNING created_at
	`

	err := r.QueryRow(ctx, query,
		session.TelegramID,
		session.Token,
		session.Username,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// GetByTelegramID возвращает сессию или nil, если пользователь не входил
func (r *SessionRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Session, error) {
	query := `
		SELECT telegram_id, token, username, created_at, expires_at
		FROM console_sessions
		WHERE telegram_id = $1
	`

	var session model.Session
	found, err := r.ScanOne(ctx, query, []any{telegramID},
		&session.TelegramID,
		&session.Token,
		&session.Username,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get session by telegram id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &session, nil
}

// Delete удаляет сессию пользователя
func (r *SessionRepository) Delete(ctx context.Context, telegramID int64) error {
	if _, err := r.ExecAffected(ctx, `DELETE FROM console_sessions WHERE telegram_id = $1`, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired удаляет сессии, истёкшие к моменту now
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM console_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return affected, nil
}
