package services

import (
	"context"

	"promptimize/internal/domain/models"
)

// ImproveService runs the full improvement flow: validate the prompt, apply
// the enhancement pipeline after the configured simulated latency, and record
// the result in the history.
type ImproveService interface {
	// Improve enhances a prompt and records it.
	// Returns domain.ErrValidation for a blank prompt (no state change).
	// The simulated latency honors ctx cancellation.
	Improve(ctx context.Context, req *ImproveRequest) (*models.Chat, error)
}

// ImproveRequest is the DTO for an improvement request
type ImproveRequest struct {
	Prompt string `json:"prompt"`
}

// AnalyzeRequest is the DTO for a prompt analysis request
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}
