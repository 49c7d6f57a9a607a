package repositories

import (
	"context"

	"promptimize/internal/domain/models"
)

// HistoryStorage defines the durable backend for the chat history.
// The full bounded sequence is written on every mutation and read once at
// startup, so the interface is a whole-record load/save rather than per-row
// CRUD.
type HistoryStorage interface {
	// Load reads the persisted history.
	// Returns domain.ErrStorageParse (wrapped) if the record is corrupt;
	// an absent record yields an empty slice and no error.
	Load(ctx context.Context) ([]models.Chat, error)

	// Save persists the full history, replacing any previous record.
	Save(ctx context.Context, chats []models.Chat) error
}
