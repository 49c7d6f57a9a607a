package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"promptimize/internal/config"
	"promptimize/internal/domain"
	"promptimize/internal/domain/models"
	"promptimize/internal/domain/repositories"
	"promptimize/internal/domain/services"
)

// Service implements the HistoryService interface.
// It holds the bounded in-memory sequence and writes the full sequence back
// to the injected storage backend on every mutation. The store's operations
// are serialized by a mutex; handlers never touch the sequence directly.
type Service struct {
	mu      sync.Mutex
	storage repositories.HistoryStorage
	chats   []models.Chat
	logger  *slog.Logger
}

// NewService creates the history service and loads the persisted history
// once. Corrupt or absent data yields an empty history (logged, never
// surfaced).
func NewService(ctx context.Context, storage repositories.HistoryStorage, logger *slog.Logger) services.HistoryService {
	chats, err := storage.Load(ctx)
	if err != nil {
		logger.Warn("history load failed, starting empty", "error", err)
		chats = nil
	}
	if len(chats) > config.MaxHistoryEntries {
		chats = chats[:config.MaxHistoryEntries]
	}

	return &Service{
		storage: storage,
		chats:   chats,
		logger:  logger,
	}
}

// Add records an improvement, merging into the head chat when its prompt
// matches or inserting a new chat at the head otherwise.
func (s *Service) Add(ctx context.Context, promptText, improvedText string) (*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	// Head-only matching: an older chat with the same prompt is never merged
	// into; re-submitting it creates a new entry.
	if len(s.chats) > 0 && strings.TrimSpace(s.chats[0].Prompt) == strings.TrimSpace(promptText) {
		head := &s.chats[0]
		if head.Versions == nil {
			head.Versions = []string{head.Improved}
		}
		head.Versions = append(head.Versions, improvedText)
		head.Improved = improvedText
		head.CreatedAt = now

		s.persist(ctx)

		s.logger.Info("chat merged",
			"id", head.ID,
			"versions", len(head.Versions),
		)

		out := head.Clone()
		return &out, nil
	}

	chat := models.Chat{
		ID:        uuid.NewString(),
		Prompt:    promptText,
		Improved:  improvedText,
		Versions:  []string{improvedText},
		Favorited: false,
		CreatedAt: now,
	}

	s.chats = append([]models.Chat{chat}, s.chats...)
	if len(s.chats) > config.MaxHistoryEntries {
		s.chats = s.chats[:config.MaxHistoryEntries]
	}

	s.persist(ctx)

	s.logger.Info("chat created", "id", chat.ID)

	out := chat.Clone()
	return &out, nil
}

// Get retrieves a chat by ID
func (s *Service) Get(ctx context.Context, id string) (*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ID == id {
			out := s.chats[i].Clone()
			return &out, nil
		}
	}

	return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
}

// List retrieves the history, most recent first
func (s *Service) List(ctx context.Context, favoritedOnly bool) ([]models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Return copies, never the backing slice
	chats := []models.Chat{}
	for i := range s.chats {
		if favoritedOnly && !s.chats[i].Favorited {
			continue
		}
		chats = append(chats, s.chats[i].Clone())
	}

	return chats, nil
}

// ToggleFavorite flips the favorited flag on the matching chat
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ID != id {
			continue
		}
		s.chats[i].Favorited = !s.chats[i].Favorited

		s.persist(ctx)

		s.logger.Info("chat favorite toggled",
			"id", id,
			"favorited", s.chats[i].Favorited,
		)

		out := s.chats[i].Clone()
		return &out, nil
	}

	return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
}

// Delete removes the matching chat
func (s *Service) Delete(ctx context.Context, id string) (*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ID != id {
			continue
		}
		deleted := s.chats[i].Clone()
		s.chats = append(s.chats[:i], s.chats[i+1:]...)

		s.persist(ctx)

		s.logger.Info("chat deleted", "id", id)

		return &deleted, nil
	}

	return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
}

// persist writes the full history back to storage. Persistence is
// best-effort: a failed write leaves in-memory state intact and is only
// logged.
func (s *Service) persist(ctx context.Context) {
	snapshot := make([]models.Chat, len(s.chats))
	for i := range s.chats {
		snapshot[i] = s.chats[i].Clone()
	}

	if err := s.storage.Save(ctx, snapshot); err != nil {
		s.logger.Warn("history save failed", "error", err)
	}
}
