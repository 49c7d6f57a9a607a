package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promptimize/internal/domain"
	"promptimize/internal/domain/models"
	"promptimize/internal/domain/repositories"
)

// historyKey identifies the single row holding the serialized history.
// The whole bounded sequence lives under one key, written on every mutation.
const historyKey = "promptimize.history"

// PostgresHistoryStorage implements the HistoryStorage interface using PostgreSQL
type PostgresHistoryStorage struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewHistoryStorage creates a new PostgresHistoryStorage
func NewHistoryStorage(config *RepositoryConfig) repositories.HistoryStorage {
	return &PostgresHistoryStorage{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Load reads the history record.
// An absent row is an empty history; an unparseable record is reported as
// domain.ErrStorageParse for the caller to recover from.
func (r *PostgresHistoryStorage) Load(ctx context.Context) ([]models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT chats FROM %s
		WHERE key = $1
	`, r.tables.History)

	var data []byte
	err := r.pool.QueryRow(ctx, query, historyKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No history persisted yet
			return []models.Chat{}, nil
		}
		return nil, fmt.Errorf("%w: load history: %v", domain.ErrStorageParse, err)
	}

	var chats []models.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		return nil, fmt.Errorf("%w: unmarshal history: %v", domain.ErrStorageParse, err)
	}

	// Return empty slice instead of nil
	if chats == nil {
		chats = []models.Chat{}
	}

	return chats, nil
}

// Save upserts the full history under the history key
func (r *PostgresHistoryStorage) Save(ctx context.Context, chats []models.Chat) error {
	data, err := json.Marshal(chats)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (key, chats, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			chats = EXCLUDED.chats,
			updated_at = EXCLUDED.updated_at
	`, r.tables.History)

	if _, err := r.pool.Exec(ctx, query, historyKey, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	r.logger.Debug("history saved", "chats", len(chats))

	return nil
}
