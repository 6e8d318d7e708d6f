package postgres_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ViewStateRepository — реализация ViewStateRepositoryPort поверх PostgreSQL.
// Одна строка на навигационную запись:
//
//	CREATE TABLE view_state (
//	    entry_key  text PRIMARY KEY,
//	    payload    jsonb NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type ViewStateRepository struct {
	pool *pgxpool.Pool
}

func NewViewStateRepository(pool *pgxpool.Pool) (*ViewStateRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ViewStateRepository{pool: pool}, nil
}

func (r *ViewStateRepository) Load(ctx context.Context, entryKey string) (domain.ViewState, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresViewStateRepository",
		"method":    "Load",
		"entry_key": entryKey,
	})

	query := `SELECT payload FROM view_state WHERE entry_key = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, entryKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Неизвестный ключ — пустое состояние Idle.
			return domain.ViewState{}, nil
		}
		repoLogger.Error("Failed to load view state", err, port.Fields{"query": query})
		return domain.ViewState{}, fmt.Errorf("failed to load view state: %w", err)
	}

	var state domain.ViewState
	if err := json.Unmarshal(payload, &state); err != nil {
		repoLogger.Error("Failed to unmarshal view state payload", err, nil)
		return domain.ViewState{}, fmt.Errorf("failed to unmarshal view state: %w", err)
	}
	return state, nil
}

func (r *ViewStateRepository) Save(ctx context.Context, entryKey string, state domain.ViewState) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresViewStateRepository",
		"method":    "Save",
		"entry_key": entryKey,
	})

	payload, err := json.Marshal(state)
	if err != nil {
		repoLogger.Error("Failed to marshal view state", err, nil)
		return fmt.Errorf("failed to marshal view state: %w", err)
	}

	query := `INSERT INTO view_state (entry_key, payload, updated_at)
	          VALUES ($1, $2, now())
	          ON CONFLICT (entry_key) DO UPDATE SET payload = $2, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, entryKey, payload); err != nil {
		repoLogger.Error("Failed to persist view state", err, port.Fields{"query": query})
		return fmt.Errorf("failed to save view state: %w", err)
	}

	repoLogger.Debug("View state persisted", nil)
	return nil
}
