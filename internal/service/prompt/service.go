package prompt

import (
	"promptimize/internal/domain/services"
	"promptimize/internal/rules"
)

// Service implements the PromptService interface on top of the rule registry
type Service struct {
	rules *rules.Registry
}

// NewService creates a new prompt heuristics service
func NewService(registry *rules.Registry) services.PromptService {
	return &Service{rules: registry}
}
