// Package file persists the chat history as a single JSON file on disk,
// the durable-storage record of the service: one key (the file), holding the
// serialized array of chats, rewritten on every mutation.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"promptimize/internal/domain"
	"promptimize/internal/domain/models"
	"promptimize/internal/domain/repositories"
)

// HistoryStorage implements the HistoryStorage interface on a JSON file
type HistoryStorage struct {
	path   string
	logger *slog.Logger
}

// NewHistoryStorage creates a file-backed history storage
func NewHistoryStorage(path string, logger *slog.Logger) repositories.HistoryStorage {
	return &HistoryStorage{
		path:   path,
		logger: logger,
	}
}

// Load reads and parses the history file.
// An absent file is an empty history; anything unreadable or unparseable is
// reported as domain.ErrStorageParse for the caller to recover from.
func (s *HistoryStorage) Load(ctx context.Context) ([]models.Chat, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Chat{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageParse, s.path, err)
	}

	var chats []models.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		return nil, fmt.Errorf("%w: unmarshal %s: %v", domain.ErrStorageParse, s.path, err)
	}

	// Return empty slice instead of nil
	if chats == nil {
		chats = []models.Chat{}
	}

	return chats, nil
}

// Save writes the full history, replacing the previous record.
// The write goes through a temp file and rename so a failure mid-write never
// leaves a corrupt record behind.
func (s *HistoryStorage) Save(ctx context.Context, chats []models.Chat) error {
	data, err := json.MarshalIndent(chats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}

	s.logger.Debug("history saved", "path", s.path, "chats", len(chats))

	return nil
}
