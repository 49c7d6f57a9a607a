package prompt

import (
	"reflect"
	"testing"

	"promptimize/internal/domain/models"
)

func TestRenderDiff(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		original string
		improved string
		want     []models.DiffSegment
	}{
		{
			name:     "inserted word is marked added",
			original: "hello world",
			improved: "hello there world",
			want: []models.DiffSegment{
				{Text: "hello"},
				{Text: " "},
				{Text: "there", Added: true},
				{Text: " "},
				{Text: "world"},
			},
		},
		{
			name:     "moved words count as unchanged",
			original: "b a",
			improved: "a b",
			want: []models.DiffSegment{
				{Text: "a"},
				{Text: " "},
				{Text: "b"},
			},
		},
		{
			name:     "duplicate beyond supply is added",
			original: "a",
			improved: "a a",
			want: []models.DiffSegment{
				{Text: "a"},
				{Text: " "},
				{Text: "a", Added: true},
			},
		},
		{
			name:     "empty original marks everything added",
			original: "",
			improved: "all new",
			want: []models.DiffSegment{
				{Text: "all", Added: true},
				{Text: " "},
				{Text: "new", Added: true},
			},
		},
		{
			name:     "whitespace runs are preserved",
			original: "a b",
			improved: "a\n  b",
			want: []models.DiffSegment{
				{Text: "a"},
				{Text: "\n  "},
				{Text: "b"},
			},
		},
		{
			name:     "matching is case-sensitive and exact",
			original: "Hello world",
			improved: "hello world",
			want: []models.DiffSegment{
				{Text: "hello", Added: true},
				{Text: " "},
				{Text: "world"},
			},
		},
		{
			name:     "empty improved yields no segments",
			original: "whatever",
			improved: "",
			want:     []models.DiffSegment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.RenderDiff(tt.original, tt.improved)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RenderDiff(%q, %q) = %v, want %v", tt.original, tt.improved, got, tt.want)
			}
		})
	}
}

// The enhancer only prepends and appends, so every word of the original
// prompt must survive unchanged in the diff against its improved form.
func TestRenderDiffAgainstEnhancer(t *testing.T) {
	svc := newTestService(t)

	original := "Summarize the quarterly report"
	improved, err := svc.Enhance(original)
	if err != nil {
		t.Fatalf("Enhance() error = %v", err)
	}

	unchanged := map[string]int{}
	for _, seg := range svc.RenderDiff(original, improved) {
		if !seg.Added {
			unchanged[seg.Text]++
		}
	}

	for _, word := range []string{"Summarize", "the", "quarterly"} {
		if unchanged[word] == 0 {
			t.Errorf("word %q from the original marked added", word)
		}
	}
}
