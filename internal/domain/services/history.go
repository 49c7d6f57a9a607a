package services

import (
	"context"

	"promptimize/internal/domain/models"
)

// HistoryService defines the business logic for the bounded chat history.
// The history holds at most config.MaxHistoryEntries chats, most recent first.
type HistoryService interface {
	// Add records an improvement. If the head chat's prompt matches
	// promptText (both trimmed), the head is merged: improvedText becomes its
	// latest version. Otherwise a new chat is inserted at the head and the
	// history is truncated to its bound. Only the head is ever matched;
	// re-submitting an older prompt creates a new chat.
	// The resulting history is persisted best-effort.
	Add(ctx context.Context, promptText, improvedText string) (*models.Chat, error)

	// Get retrieves a chat by ID
	// Returns domain.ErrNotFound if not found
	Get(ctx context.Context, id string) (*models.Chat, error)

	// List retrieves the history, most recent first.
	// With favoritedOnly set, only favorited chats are returned.
	List(ctx context.Context, favoritedOnly bool) ([]models.Chat, error)

	// ToggleFavorite flips the favorited flag on the matching chat and persists.
	// Returns domain.ErrNotFound (state untouched) if not found.
	ToggleFavorite(ctx context.Context, id string) (*models.Chat, error)

	// Delete removes the matching chat and persists.
	// Returns domain.ErrNotFound (state untouched) if not found.
	Delete(ctx context.Context, id string) (*models.Chat, error)
}
