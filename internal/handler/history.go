package handler

import (
	"log/slog"
	"net/http"

	"promptimize/internal/domain/services"
	"promptimize/internal/httputil"
)

// HistoryHandler handles chat history HTTP requests
type HistoryHandler struct {
	historyService services.HistoryService
	promptService  services.PromptService
	logger         *slog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(
	historyService services.HistoryService,
	promptService services.PromptService,
	logger *slog.Logger,
) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		promptService:  promptService,
		logger:         logger,
	}
}

// ListHistory retrieves the history, most recent first
// GET /api/history?favorited=true
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	favoritedOnly := r.URL.Query().Get("favorited") == "true"

	chats, err := h.historyService.List(r.Context(), favoritedOnly)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chats)
}

// GetVersionHistory retrieves a chat's improved versions with their diffs
// GET /api/history/{id}/versions
func (h *HistoryHandler) GetVersionHistory(w http.ResponseWriter, r *http.Request) {
	chatID, ok := PathParam(w, r, "id", "Chat ID")
	if !ok {
		return
	}

	chat, err := h.historyService.Get(r.Context(), chatID)
	if err != nil {
		handleError(w, err)
		return
	}

	// Records persisted before version tracking carry only the latest text
	versions := chat.Versions
	if len(versions) == 0 {
		versions = []string{chat.Improved}
	}

	resp := VersionHistoryResponse{
		Prompt:   chat.Prompt,
		Versions: make([]ImprovedVersion, 0, len(versions)),
	}
	for _, v := range versions {
		resp.Versions = append(resp.Versions, ImprovedVersion{
			Text: v,
			Diff: h.promptService.RenderDiff(chat.Prompt, v),
		})
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// ToggleFavorite flips a chat's favorited flag
// POST /api/history/{id}/favorite
func (h *HistoryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	chatID, ok := PathParam(w, r, "id", "Chat ID")
	if !ok {
		return
	}

	chat, err := h.historyService.ToggleFavorite(r.Context(), chatID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chat)
}

// DeleteChat removes a chat from the history
// DELETE /api/history/{id}
func (h *HistoryHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID, ok := PathParam(w, r, "id", "Chat ID")
	if !ok {
		return
	}

	chat, err := h.historyService.Delete(r.Context(), chatID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chat)
}
