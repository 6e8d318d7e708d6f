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

// Пространство имен набора сравнения в таблице client_state.
const compareSetKey = "compare_set"

// CompareRepository — реализация CompareRepositoryPort поверх PostgreSQL.
// Набор хранится одним JSONB-документом в таблице client_state:
//
//	CREATE TABLE client_state (
//	    namespace  text PRIMARY KEY,
//	    payload    jsonb NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type CompareRepository struct {
	pool *pgxpool.Pool
}

func NewCompareRepository(pool *pgxpool.Pool) (*CompareRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CompareRepository{pool: pool}, nil
}

func (r *CompareRepository) Load(ctx context.Context) (domain.CompareSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresCompareRepository",
		"method":    "Load",
	})

	query := `SELECT payload FROM client_state WHERE namespace = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, compareSetKey).Scan(&payload)
	if err != nil {
		// Отсутствие строки означает пустой набор, это не ошибка.
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CompareSet{}, nil
		}
		repoLogger.Error("Failed to load compare set", err, port.Fields{"query": query})
		return domain.CompareSet{}, fmt.Errorf("failed to load compare set: %w", err)
	}

	var set domain.CompareSet
	if err := json.Unmarshal(payload, &set); err != nil {
		repoLogger.Error("Failed to unmarshal compare set payload", err, nil)
		return domain.CompareSet{}, fmt.Errorf("failed to unmarshal compare set: %w", err)
	}
	return set, nil
}

func (r *CompareRepository) Save(ctx context.Context, set domain.CompareSet) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresCompareRepository",
		"method":    "Save",
		"size":      set.Size(),
	})

	payload, err := json.Marshal(set)
	if err != nil {
		repoLogger.Error("Failed to marshal compare set", err, nil)
		return fmt.Errorf("failed to marshal compare set: %w", err)
	}

	query := `INSERT INTO client_state (namespace, payload, updated_at)
	          VALUES ($1, $2, now())
	          ON CONFLICT (namespace) DO UPDATE SET payload = $2, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, compareSetKey, payload); err != nil {
		repoLogger.Error("Failed to persist compare set", err, port.Fields{"query": query})
		return fmt.Errorf("failed to save compare set: %w", err)
	}

	repoLogger.Debug("Compare set persisted", nil)
	return nil
}
