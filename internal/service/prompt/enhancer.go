package prompt

import (
	"fmt"
	"strings"

	"promptimize/internal/domain"
	"promptimize/internal/rules"
)

// Enhance applies the enhancement steps in order. Each step tests the
// accumulating result, not the original input, so later checks see earlier
// insertions. Output is append-only after the first step's one-time prepend.
func (s *Service) Enhance(raw string) (string, error) {
	improved := strings.TrimSpace(raw)
	if improved == "" {
		return "", fmt.Errorf("%w: prompt must not be empty", domain.ErrValidation)
	}

	for _, step := range s.rules.EnhanceSteps {
		if stepSatisfied(improved, step) {
			continue
		}
		if step.Prepend != "" {
			improved = step.Prepend + improved
		}
		if step.Append != "" {
			improved += step.Append
		}
	}

	return improved, nil
}

// stepSatisfied reports whether the text already contains the step's marker
func stepSatisfied(text string, step rules.EnhanceStep) bool {
	if step.CaseSensitive {
		return strings.Contains(text, step.Contains)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(step.Contains))
}
