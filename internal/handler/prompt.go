package handler

import (
	"log/slog"
	"net/http"

	"promptimize/internal/domain/services"
	"promptimize/internal/httputil"
)

// PromptHandler handles prompt improvement and analysis HTTP requests
// Follows Clean Architecture: handlers only communicate with services
type PromptHandler struct {
	improveService services.ImproveService
	promptService  services.PromptService
	logger         *slog.Logger
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(
	improveService services.ImproveService,
	promptService services.PromptService,
	logger *slog.Logger,
) *PromptHandler {
	return &PromptHandler{
		improveService: improveService,
		promptService:  promptService,
		logger:         logger,
	}
}

// ImprovePrompt runs the improvement pipeline and records the result
// POST /api/improve
// Returns 201 with the resulting chat; 400 for a blank prompt
func (h *PromptHandler) ImprovePrompt(w http.ResponseWriter, r *http.Request) {
	var req services.ImproveRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chat, err := h.improveService.Improve(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, chat)
}

// AnalyzePrompt scores a prompt for real-time feedback
// POST /api/analyze
func (h *PromptHandler) AnalyzePrompt(w http.ResponseWriter, r *http.Request) {
	var req services.AnalyzeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.promptService.Analyze(req.Prompt)

	httputil.RespondJSON(w, http.StatusOK, result)
}

// HealthCheck reports service liveness
// GET /health
func (h *PromptHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
