package prompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name            string
		input           string
		wantScore       int
		wantPercent     int
		wantSuggestions []string
	}{
		{
			name:        "empty prompt scores the minimum",
			input:       "",
			wantScore:   1,
			wantPercent: 10,
			// Five suggestions fire; the list is cut to the first four, so
			// the short-prompt hint falls off the end.
			wantSuggestions: []string{
				"Include 1–2 concrete examples",
				"Specify tone/style (e.g., professional, friendly)",
				"Define output format/constraints",
				"State the audience and goal",
			},
		},
		{
			name:        "single keyword scores its points",
			input:       "example",
			wantScore:   2,
			wantPercent: 20,
			wantSuggestions: []string{
				"Specify tone/style (e.g., professional, friendly)",
				"Define output format/constraints",
				"State the audience and goal",
				"Add more context to clarify intent",
			},
		},
		{
			name:        "vague word appears when fewer checks fail",
			input:       "make a detailed list with examples in a formal tone and clear format for my audience",
			wantScore:   8,
			wantPercent: 80,
			wantSuggestions: []string{
				"Replace vague words with specifics",
			},
		},
		{
			name:        "keyword groups match by substring",
			input:       "stonework",
			wantScore:   2,
			wantPercent: 20,
			wantSuggestions: []string{
				"Include 1–2 concrete examples",
				"Define output format/constraints",
				"State the audience and goal",
				"Add more context to clarify intent",
			},
		},
		{
			name:        "example check requires a whole word",
			input:       "counterexamples are not enough here honestly",
			wantScore:   1,
			wantPercent: 10,
			wantSuggestions: []string{
				"Include 1–2 concrete examples",
				"Specify tone/style (e.g., professional, friendly)",
				"Define output format/constraints",
				"State the audience and goal",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Analyze(tt.input)

			if got.Score != tt.wantScore {
				t.Errorf("Analyze(%q).Score = %d, want %d", tt.input, got.Score, tt.wantScore)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Analyze(%q).Percent = %d, want %d", tt.input, got.Percent, tt.wantPercent)
			}
			if !reflect.DeepEqual(got.Suggestions, tt.wantSuggestions) {
				t.Errorf("Analyze(%q).Suggestions = %v, want %v", tt.input, got.Suggestions, tt.wantSuggestions)
			}
		})
	}
}

func TestAnalyzeFullScore(t *testing.T) {
	svc := newTestService(t)

	// Long enough for the full length bonus, hits every keyword group,
	// no vague words.
	input := "examples tone format audience " + strings.Repeat("x", 150)

	got := svc.Analyze(input)
	if got.Score != 10 {
		t.Errorf("Score = %d, want 10", got.Score)
	}
	if got.Percent != 100 {
		t.Errorf("Percent = %d, want 100", got.Percent)
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none", got.Suggestions)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	svc := newTestService(t)

	inputs := []string{
		"",
		" ",
		"do stuff",
		"examples examples examples tone style voice format steps audience goal purpose " + strings.Repeat("padding ", 100),
		"short",
	}

	for _, input := range inputs {
		got := svc.Analyze(input)
		if got.Score < 1 || got.Score > 10 {
			t.Errorf("Analyze(%q).Score = %d, out of [1,10]", input, got.Score)
		}
		if len(got.Suggestions) > 4 {
			t.Errorf("Analyze(%q) returned %d suggestions, max 4", input, len(got.Suggestions))
		}
	}
}
