package improve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"promptimize/internal/config"
	"promptimize/internal/domain"
	"promptimize/internal/domain/models"
	"promptimize/internal/domain/services"
)

// Service implements the ImproveService interface.
// It chains validation, the simulated-latency delay, the enhancement
// pipeline, and history recording.
type Service struct {
	prompts services.PromptService
	history services.HistoryService
	delay   time.Duration
	logger  *slog.Logger
}

// NewService creates a new improvement service
func NewService(
	prompts services.PromptService,
	history services.HistoryService,
	delay time.Duration,
	logger *slog.Logger,
) services.ImproveService {
	return &Service{
		prompts: prompts,
		history: history,
		delay:   delay,
		logger:  logger,
	}
}

// Improve enhances a prompt and records the result in the history
func (s *Service) Improve(ctx context.Context, req *services.ImproveRequest) (*models.Chat, error) {
	// Validate request
	if err := s.validateImproveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", domain.ErrValidation)
	}

	// Simulated latency stands in for a real model call. No work happens
	// during the wait, but it honors cancellation so a future asynchronous
	// backend can slot in.
	if err := sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	improved, err := s.prompts.Enhance(req.Prompt)
	if err != nil {
		return nil, err
	}

	chat, err := s.history.Add(ctx, req.Prompt, improved)
	if err != nil {
		return nil, err
	}

	s.logger.Info("prompt improved",
		"id", chat.ID,
		"prompt_len", len(req.Prompt),
		"improved_len", len(improved),
	)

	return chat, nil
}

// sleep waits out the delay or returns early when ctx is canceled
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) validateImproveRequest(req *services.ImproveRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Prompt,
			validation.Required,
			validation.Length(1, config.MaxPromptLength),
		),
	)
}
