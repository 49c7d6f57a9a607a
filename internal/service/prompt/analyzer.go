package prompt

import (
	"strings"
	"unicode/utf8"

	"promptimize/internal/config"
	"promptimize/internal/domain/models"
)

// Analyze scores a prompt against the registry's checks and collects
// suggestions for the ones it fails, in check order. The score is clamped to
// [MinPromptScore, MaxPromptScore] and the suggestion list truncated to
// MaxSuggestions.
func (s *Service) Analyze(raw string) models.AnalysisResult {
	trimmedLen := utf8.RuneCountInString(strings.TrimSpace(raw))

	score := 0
	var suggestions []string

	if lb := s.rules.LengthBonus; lb.PerChars > 0 && trimmedLen > 0 {
		bonus := trimmedLen / lb.PerChars
		if bonus > lb.MaxPoints {
			bonus = lb.MaxPoints
		}
		score += bonus
	}

	for _, check := range s.rules.Checks {
		if check.Pattern.MatchString(raw) {
			score += check.Points
		} else {
			suggestions = append(suggestions, check.Suggestion)
		}
	}

	// Vagueness and brevity add suggestions without affecting the score
	if s.rules.Vague.Pattern.MatchString(raw) {
		suggestions = append(suggestions, s.rules.Vague.Suggestion)
	}
	if trimmedLen < s.rules.ShortPrompt.MaxLength {
		suggestions = append(suggestions, s.rules.ShortPrompt.Suggestion)
	}

	if score < config.MinPromptScore {
		score = config.MinPromptScore
	}
	if score > config.MaxPromptScore {
		score = config.MaxPromptScore
	}
	if len(suggestions) > config.MaxSuggestions {
		suggestions = suggestions[:config.MaxSuggestions]
	}
	// Return empty slice instead of nil
	if suggestions == nil {
		suggestions = []string{}
	}

	return models.AnalysisResult{
		Score:       score,
		Percent:     score * 100 / config.MaxPromptScore,
		Suggestions: suggestions,
	}
}
