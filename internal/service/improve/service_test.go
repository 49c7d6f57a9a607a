package improve

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"promptimize/internal/domain"
	"promptimize/internal/domain/services"
	"promptimize/internal/repository/memory"
	"promptimize/internal/rules"
	historySvc "promptimize/internal/service/history"
	promptSvc "promptimize/internal/service/prompt"
)

func newTestService(t *testing.T, delay time.Duration) (services.ImproveService, services.HistoryService) {
	t.Helper()

	registry, err := rules.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	prompts := promptSvc.NewService(registry)
	history := historySvc.NewService(context.Background(), memory.NewHistoryStorage(), logger)
	return NewService(prompts, history, delay, logger), history
}

func TestImprove(t *testing.T) {
	svc, history := newTestService(t, 0)
	ctx := context.Background()

	chat, err := svc.Improve(ctx, &services.ImproveRequest{Prompt: "Write a poem"})
	if err != nil {
		t.Fatalf("Improve() error = %v", err)
	}

	if chat.Prompt != "Write a poem" {
		t.Errorf("Prompt = %q, want the original", chat.Prompt)
	}
	if !strings.HasPrefix(chat.Improved, "Create a detailed ") {
		t.Errorf("Improved = %q, want enhanced text", chat.Improved)
	}
	if len(chat.Versions) != 1 || chat.Versions[0] != chat.Improved {
		t.Errorf("Versions = %v, want the improved text", chat.Versions)
	}

	// The result must also land in the history
	chats, err := history.List(ctx, false)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(chats) != 1 || chats[0].ID != chat.ID {
		t.Errorf("history = %v, want the improved chat", chats)
	}
}

func TestImproveValidation(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	tests := []struct {
		name   string
		prompt string
	}{
		{name: "empty", prompt: ""},
		{name: "whitespace only", prompt: "   \n\t"},
		{name: "over length limit", prompt: strings.Repeat("x", 10001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Improve(ctx, &services.ImproveRequest{Prompt: tt.prompt}); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Improve() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestImproveHonorsCancellation(t *testing.T) {
	svc, history := newTestService(t, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Improve(ctx, &services.ImproveRequest{Prompt: "Write a poem"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Improve() error = %v, want context.Canceled", err)
	}

	chats, err := history.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(chats) != 0 {
		t.Errorf("canceled improvement still recorded: %v", chats)
	}
}

func TestImproveMergesRepeatPrompt(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	first, err := svc.Improve(ctx, &services.ImproveRequest{Prompt: "Write a poem"})
	if err != nil {
		t.Fatalf("Improve() error = %v", err)
	}
	second, err := svc.Improve(ctx, &services.ImproveRequest{Prompt: "Write a poem"})
	if err != nil {
		t.Fatalf("Improve() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("repeat improvement created a new chat: %s != %s", second.ID, first.ID)
	}
	if len(second.Versions) != 2 {
		t.Errorf("len(Versions) = %d, want 2", len(second.Versions))
	}
}
