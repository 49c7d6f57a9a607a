package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"promptimize/internal/domain"
	"promptimize/internal/domain/services"
	"promptimize/internal/httputil"
	"promptimize/internal/share"
)

// ShareHandler handles share-link HTTP requests
type ShareHandler struct {
	historyService services.HistoryService
	baseURL        string
	logger         *slog.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(
	historyService services.HistoryService,
	baseURL string,
	logger *slog.Logger,
) *ShareHandler {
	return &ShareHandler{
		historyService: historyService,
		baseURL:        baseURL,
		logger:         logger,
	}
}

// CreateShareLink encodes a prompt/improved pair into a shareable link
// POST /api/share
func (h *ShareHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateShareRequest(&req); err != nil {
		handleError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	token, err := share.Encode(req.Prompt, req.Improved)
	if err != nil {
		handleError(w, err)
		return
	}

	url, err := share.URL(h.baseURL, token)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("share link created", "token_len", len(token))

	httputil.RespondJSON(w, http.StatusOK, ShareResponse{Token: token, URL: url})
}

// OpenShareLink decodes a share token and records the pair in the history,
// subject to the same head-merge rule as a regular improvement
// GET /api/share/{token}
func (h *ShareHandler) OpenShareLink(w http.ResponseWriter, r *http.Request) {
	token, ok := PathParam(w, r, "token", "Share token")
	if !ok {
		return
	}

	payload, err := share.Decode(token)
	if err != nil {
		handleError(w, err)
		return
	}

	chat, err := h.historyService.Add(r.Context(), payload.Prompt, payload.Improved)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chat)
}

func validateShareRequest(req *ShareRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Prompt, validation.Required),
		validation.Field(&req.Improved, validation.Required),
	)
}
