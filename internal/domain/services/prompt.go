package services

import (
	"promptimize/internal/domain/models"
)

// PromptService defines the pure text heuristics: the enhancement pipeline,
// the quality analyzer, and the word-level diff renderer. All methods are
// deterministic and side-effect free.
type PromptService interface {
	// Enhance rewrites a raw prompt into its improved form.
	// Returns domain.ErrValidation for empty/whitespace-only input.
	Enhance(raw string) (string, error)

	// Analyze scores a prompt and lists improvement suggestions.
	// Total: empty input yields the minimum score.
	Analyze(raw string) models.AnalysisResult

	// RenderDiff tags the improved text's words as added or unchanged
	// relative to the original.
	RenderDiff(original, improved string) []models.DiffSegment
}
