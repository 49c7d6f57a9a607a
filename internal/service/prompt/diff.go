package prompt

import (
	"strings"
	"unicode"

	"promptimize/internal/domain/models"
)

// RenderDiff produces a word-level diff of the improved text against the
// original. Words are matched greedily against a multiset of the original's
// words, so a word that moved position but still has remaining supply counts
// as unchanged. Whitespace runs are preserved as their own segments.
func (s *Service) RenderDiff(original, improved string) []models.DiffSegment {
	remaining := make(map[string]int)
	for _, word := range strings.Fields(original) {
		remaining[word]++
	}

	segments := []models.DiffSegment{}
	for _, token := range splitKeepingWhitespace(improved) {
		if strings.TrimSpace(token) == "" {
			segments = append(segments, models.DiffSegment{Text: token})
			continue
		}
		if remaining[token] > 0 {
			remaining[token]--
			segments = append(segments, models.DiffSegment{Text: token})
			continue
		}
		segments = append(segments, models.DiffSegment{Text: token, Added: true})
	}

	return segments
}

// splitKeepingWhitespace splits text into alternating word and whitespace-run
// tokens, preserving both.
func splitKeepingWhitespace(text string) []string {
	var tokens []string
	var current strings.Builder
	inSpace := false

	for _, r := range text {
		isSpace := unicode.IsSpace(r)
		if current.Len() > 0 && isSpace != inSpace {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		inSpace = isSpace
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
