// Package memory provides an in-memory HistoryStorage, used as the test fake
// and for ephemeral runs where persistence is not wanted.
package memory

import (
	"context"
	"sync"

	"promptimize/internal/domain/models"
)

// HistoryStorage implements the HistoryStorage interface in memory
type HistoryStorage struct {
	mu    sync.Mutex
	chats []models.Chat
	saves int
}

// NewHistoryStorage creates an empty in-memory history storage
func NewHistoryStorage() *HistoryStorage {
	return &HistoryStorage{}
}

// Load returns the stored history
func (s *HistoryStorage) Load(ctx context.Context) ([]models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneChats(s.chats), nil
}

// Save replaces the stored history
func (s *HistoryStorage) Save(ctx context.Context, chats []models.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = cloneChats(chats)
	s.saves++
	return nil
}

// Seed replaces the stored history without counting as a save (test setup)
func (s *HistoryStorage) Seed(chats []models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = cloneChats(chats)
}

// Snapshot returns a copy of the stored history (test inspection)
func (s *HistoryStorage) Snapshot() []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneChats(s.chats)
}

// Saves returns how many times Save has been called (test inspection)
func (s *HistoryStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saves
}

func cloneChats(chats []models.Chat) []models.Chat {
	out := make([]models.Chat, len(chats))
	for i := range chats {
		out[i] = chats[i].Clone()
	}
	return out
}
